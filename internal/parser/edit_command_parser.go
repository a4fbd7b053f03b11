package parser

import (
	"github.com/pradyuprasad/tp/internal/command"
)

const MessageNotEdited = "At least one field to edit must be provided."

var editGrammar = grammar{
	usage: command.EditUsage,
	fields: []fieldSpec{
		{prefix: PrefixName, rule: fieldOptional},
		{prefix: PrefixPhone, rule: fieldOptional},
		{prefix: PrefixEmail, rule: fieldOptional},
		{prefix: PrefixAddress, rule: fieldOptional},
		{prefix: PrefixRole, rule: fieldOptional},
		{prefix: PrefixTag, rule: fieldRepeatable},
	},
	allowPreamble: true,
	allowTagReset: true,
}

// EditCommandParser parses "INDEX [n/NAME] [p/PHONE] [e/EMAIL] [a/ADDRESS] [r/ROLE] [tag/TAG]...".
// A lone empty "tag/" clears the person's tags.
type EditCommandParser struct{}

func (EditCommandParser) Parse(args string) (command.Command, error) {
	m, err := editGrammar.check(args)
	if err != nil {
		return nil, err
	}

	index, err := ParseIndex(m.Preamble())
	if err != nil {
		return nil, editGrammar.invalidFormat()
	}

	var d command.EditPersonDescriptor
	if raw, ok := m.Value(PrefixName); ok {
		name, err := ParseName(raw)
		if err != nil {
			return nil, err
		}
		d.Name = &name
	}
	if raw, ok := m.Value(PrefixPhone); ok {
		phone, err := ParsePhone(raw)
		if err != nil {
			return nil, err
		}
		d.Phone = &phone
	}
	if raw, ok := m.Value(PrefixEmail); ok {
		email, err := ParseEmail(raw)
		if err != nil {
			return nil, err
		}
		d.Email = &email
	}
	if raw, ok := m.Value(PrefixAddress); ok {
		address, err := ParseAddress(raw)
		if err != nil {
			return nil, err
		}
		d.Address = &address
	}
	if raw, ok := m.Value(PrefixRole); ok {
		role, err := ParseRole(raw)
		if err != nil {
			return nil, err
		}
		d.Role = &role
	}
	if m.Has(PrefixTag) {
		tags, err := parseTagsForEdit(m.AllValues(PrefixTag))
		if err != nil {
			return nil, err
		}
		d.Tags = &tags
	}

	if !d.IsAnyFieldEdited() {
		return nil, newParseError(KindMissingOrMisorderedPrefix, MessageNotEdited)
	}

	return command.NewEditCommand(index, d), nil
}

func parseTagsForEdit(values []string) ([]string, error) {
	if len(values) == 1 && values[0] == "" {
		return []string{}, nil
	}
	return ParseTags(values)
}
