package command

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/pradyuprasad/tp/internal/domain/entity"
	"github.com/pradyuprasad/tp/internal/usecase"
)

const MessageEditSuccess = "Edited Person: %s"

// EditPersonDescriptor holds the fields to change; nil fields are kept.
// A non-nil empty Tags clears every tag.
type EditPersonDescriptor struct {
	Name    *string
	Phone   *string
	Email   *string
	Address *string
	Role    *entity.Role
	Tags    *[]string
}

func (d EditPersonDescriptor) IsAnyFieldEdited() bool {
	return d.Name != nil || d.Phone != nil || d.Email != nil || d.Address != nil || d.Role != nil || d.Tags != nil
}

// clone copies every set field so the caller's values cannot reach the command
func (d EditPersonDescriptor) clone() EditPersonDescriptor {
	return EditPersonDescriptor{
		Name:    clonePtr(d.Name),
		Phone:   clonePtr(d.Phone),
		Email:   clonePtr(d.Email),
		Address: clonePtr(d.Address),
		Role:    clonePtr(d.Role),
		Tags:    cloneTags(d.Tags),
	}
}

func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

func cloneTags(p *[]string) *[]string {
	if p == nil {
		return nil
	}
	tags := slices.Clone(*p)
	if tags == nil {
		tags = []string{}
	}
	return &tags
}

// Apply returns a copy of p with the descriptor's fields applied
func (d EditPersonDescriptor) Apply(p entity.Person) entity.Person {
	edited := p.Clone()
	if d.Name != nil {
		edited.Name = *d.Name
	}
	if d.Phone != nil {
		edited.Phone = *d.Phone
	}
	if d.Email != nil {
		edited.Email = *d.Email
	}
	if d.Address != nil {
		edited.Address = *d.Address
	}
	if d.Role != nil {
		edited.Role = *d.Role
	}
	if d.Tags != nil {
		edited.Tags = slices.Clone(*d.Tags)
	}
	return edited
}

// EditCommand edits the person at a one-based index of the displayed list
type EditCommand struct {
	index      int
	descriptor EditPersonDescriptor
}

func NewEditCommand(index int, d EditPersonDescriptor) EditCommand {
	return EditCommand{index: index, descriptor: d.clone()}
}

func (c EditCommand) Execute(ctx context.Context, book usecase.AddressBookUsecase) (*CommandResult, error) {
	target, err := personAt(book, c.index)
	if err != nil {
		return nil, err
	}

	updated, err := book.SetPerson(ctx, target.ID, c.descriptor.Apply(target))
	if err != nil {
		if errors.Is(err, usecase.ErrDuplicatePerson) {
			return nil, &Error{Message: MessageDuplicatePerson, Err: err}
		}
		return nil, fmt.Errorf("failed to edit person: %w", err)
	}
	return &CommandResult{Feedback: fmt.Sprintf(MessageEditSuccess, FormatPerson(updated))}, nil
}

// personAt resolves a one-based index against the displayed list
func personAt(book usecase.AddressBookUsecase, index int) (entity.Person, error) {
	shown := book.FilteredPersons()
	if index < 1 || index > len(shown) {
		return entity.Person{}, &Error{Message: MessageInvalidPersonDisplayedIndex}
	}
	return shown[index-1], nil
}
