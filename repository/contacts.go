package repository

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/QuangTung97/textdrip/model"
	"github.com/QuangTung97/textdrip/pkg/phone"
)

// LoadContacts reads the contact source: tabular text with one header row
// and free-form columns. Malformed rows are reported and skipped.
func LoadContacts(path string, logger *zap.Logger) ([]model.Contact, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("load contacts: %w", err)
	}
	defer func() { _ = file.Close() }()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("load contacts: read header: %w", err)
	}

	var contacts []model.Contact
	line := 1
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			logger.Warn("skipping malformed contact row",
				zap.Int("line", line), zap.Error(err))
			continue
		}

		contact, err := buildContact(header, record)
		if err != nil {
			logger.Warn("skipping malformed contact row",
				zap.Int("line", line), zap.Error(err))
			continue
		}
		contacts = append(contacts, contact)
	}
	return contacts, nil
}

func buildContact(header []string, record []string) (model.Contact, error) {
	fields := map[string]string{}
	for i, name := range header {
		if i >= len(record) {
			break
		}
		fields[name] = record[i]
	}

	normalized := phone.Normalize(fields["phone"])
	fields["phone"] = normalized

	fup1Days, err := parseDays(fields["fup1_days"])
	if err != nil {
		return model.Contact{}, fmt.Errorf("fup1_days: %w", err)
	}
	fup2Days, err := parseDays(fields["fup2_days"])
	if err != nil {
		return model.Contact{}, fmt.Errorf("fup2_days: %w", err)
	}

	return model.Contact{
		Phone:    normalized,
		MatchKey: phone.MatchKey(normalized),

		Msg1:     strings.TrimSpace(fields["msg1"]),
		Fup1Days: fup1Days,
		Fup1Msg:  strings.TrimSpace(fields["fup1_msg"]),
		Fup2Days: fup2Days,
		Fup2Msg:  strings.TrimSpace(fields["fup2_msg"]),

		Fields: fields,
	}, nil
}

func parseDays(value string) (int, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0, nil
	}
	return strconv.Atoi(value)
}
