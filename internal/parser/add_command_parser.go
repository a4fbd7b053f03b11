package parser

import (
	"github.com/pradyuprasad/tp/internal/command"
	"github.com/pradyuprasad/tp/internal/domain/entity"
)

var addGrammar = grammar{
	usage: command.AddUsage,
	fields: []fieldSpec{
		{prefix: PrefixName, rule: fieldRequired},
		{prefix: PrefixPhone, rule: fieldRequired},
		{prefix: PrefixEmail, rule: fieldRequired},
		{prefix: PrefixAddress, rule: fieldRequired},
		{prefix: PrefixRole, rule: fieldRequired},
		{prefix: PrefixTag, rule: fieldRepeatable},
	},
}

// AddCommandParser parses "n/NAME p/PHONE e/EMAIL a/ADDRESS r/ROLE [tag/TAG]...".
type AddCommandParser struct{}

func (AddCommandParser) Parse(args string) (command.Command, error) {
	m, err := addGrammar.check(args)
	if err != nil {
		return nil, err
	}

	raw, _ := m.Value(PrefixName)
	name, err := ParseName(raw)
	if err != nil {
		return nil, err
	}
	raw, _ = m.Value(PrefixPhone)
	phone, err := ParsePhone(raw)
	if err != nil {
		return nil, err
	}
	raw, _ = m.Value(PrefixEmail)
	email, err := ParseEmail(raw)
	if err != nil {
		return nil, err
	}
	raw, _ = m.Value(PrefixAddress)
	address, err := ParseAddress(raw)
	if err != nil {
		return nil, err
	}
	raw, _ = m.Value(PrefixRole)
	role, err := ParseRole(raw)
	if err != nil {
		return nil, err
	}
	tags, err := ParseTags(m.AllValues(PrefixTag))
	if err != nil {
		return nil, err
	}

	return command.NewAddCommand(entity.Person{
		Name:    name,
		Phone:   phone,
		Email:   email,
		Address: address,
		Role:    role,
		Tags:    tags,
	}), nil
}
