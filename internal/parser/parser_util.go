package parser

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/pradyuprasad/tp/internal/command"
	"github.com/pradyuprasad/tp/internal/domain/entity"
	"github.com/pradyuprasad/tp/pkg/validator"
)

const (
	MessageNameConstraints    = "Names should only contain alphanumeric characters and spaces, and it should not be blank"
	MessagePhoneConstraints   = "Phone numbers should only contain numbers, and it should be at least 3 digits long"
	MessageEmailConstraints   = "Emails should be of the format local-part@domain and adhere to the usual email constraints"
	MessageAddressConstraints = "Addresses can take any values, and it should not be blank"
)

var (
	datePattern = regexp.MustCompile(`^\d{2}/\d{2}/\d{4}$`)
	timePattern = regexp.MustCompile(`^\d{2}:\d{2}$`)
	namePattern = regexp.MustCompile(`^[\p{L}\p{N}][\p{L}\p{N} ]*$`)

	fieldValidator = validator.NewValidator()
)

// ParseIndex parses a one-based index
func ParseIndex(s string) (int, error) {
	s = strings.TrimSpace(s)
	n, err := strconv.ParseUint(s, 10, 31)
	if err != nil || n == 0 {
		return 0, newParseError(KindInvalidIndex, command.MessageInvalidIndex)
	}
	return int(n), nil
}

// ParseDate parses dd/MM/yyyy into a UTC midnight time
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if !datePattern.MatchString(s) {
		return time.Time{}, newParseError(KindInvalidDate, command.MessageInvalidDate)
	}
	d, err := time.Parse(entity.DateLayout, s)
	if err != nil {
		return time.Time{}, newParseError(KindInvalidDate, command.MessageInvalidDate)
	}
	return d, nil
}

// ParseTime parses a 24-hour HH:mm clock time
func ParseTime(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if !timePattern.MatchString(s) {
		return time.Time{}, newParseError(KindInvalidTime, command.MessageInvalidTime)
	}
	t, err := time.Parse(entity.TimeLayout, s)
	if err != nil {
		return time.Time{}, newParseError(KindInvalidTime, command.MessageInvalidTime)
	}
	return t, nil
}

func ParseRole(s string) (entity.Role, error) {
	role, err := entity.ParseRole(strings.TrimSpace(s))
	if err != nil {
		return "", newParseError(KindInvalidRole, entity.RoleConstraints)
	}
	return role, nil
}

// ParseTag accepts a single non-empty alphanumeric tag
func ParseTag(s string) (string, error) {
	s = strings.TrimSpace(s)
	if err := fieldValidator.Var(s, "required,alphanum"); err != nil {
		return "", newParseError(KindEmptyTagValue, command.MessageEmptyTag)
	}
	return s, nil
}

// ParseTags parses every tag value, dropping repeats while keeping input order
func ParseTags(values []string) ([]string, error) {
	tags := make([]string, 0, len(values))
	seen := make(map[string]bool, len(values))
	for _, v := range values {
		tag, err := ParseTag(v)
		if err != nil {
			return nil, err
		}
		if seen[tag] {
			continue
		}
		seen[tag] = true
		tags = append(tags, tag)
	}
	return tags, nil
}

func ParseName(s string) (string, error) {
	s = strings.TrimSpace(s)
	if !namePattern.MatchString(s) {
		return "", newParseError(KindInvalidName, MessageNameConstraints)
	}
	return s, nil
}

func ParsePhone(s string) (string, error) {
	s = strings.TrimSpace(s)
	if err := fieldValidator.Var(s, "required,number,min=3"); err != nil {
		return "", newParseError(KindInvalidPhone, MessagePhoneConstraints)
	}
	return s, nil
}

func ParseEmail(s string) (string, error) {
	s = strings.TrimSpace(s)
	if err := fieldValidator.Var(s, "required,email"); err != nil {
		return "", newParseError(KindInvalidEmail, MessageEmailConstraints)
	}
	return s, nil
}

func ParseAddress(s string) (string, error) {
	s = strings.TrimSpace(s)
	if err := fieldValidator.Var(s, "required"); err != nil {
		return "", newParseError(KindInvalidAddress, MessageAddressConstraints)
	}
	return s, nil
}

// ParseKeywords splits s on whitespace; it fails with usage when nothing is left
func ParseKeywords(s, usage string) ([]string, error) {
	keywords := strings.Fields(s)
	if len(keywords) == 0 {
		return nil, newParseError(KindMissingOrMisorderedPrefix, command.InvalidFormat(usage))
	}
	return keywords, nil
}
