package parser

import (
	"testing"

	"github.com/pradyuprasad/tp/internal/command"
	"github.com/pradyuprasad/tp/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseIndex(t *testing.T) {
	for _, ok := range []string{"1", " 2 ", "007"} {
		_, err := ParseIndex(ok)
		assert.NoError(t, err, ok)
	}
	for _, bad := range []string{"", "0", "-1", "+1", "a", "1 2", "99999999999"} {
		_, err := ParseIndex(bad)
		require.Error(t, err, bad)
		assert.Equal(t, command.MessageInvalidIndex, err.Error())
	}

	got, err := ParseIndex("  3  ")
	require.NoError(t, err)
	assert.Equal(t, 3, got)
}

func TestParseDate(t *testing.T) {
	got, err := ParseDate(" 29/02/2024 ")
	require.NoError(t, err)
	assert.Equal(t, date(29, 2, 2024), got)

	for _, bad := range []string{"29/02/2023", "00/10/2024", "30/00/2024", "2024-10-30", "30/10/2024x", "3O/10/2024", "30/10/2024 14:00"} {
		_, err := ParseDate(bad)
		require.Error(t, err, bad)
		kind, _ := KindOf(err)
		assert.Equal(t, KindInvalidDate, kind, bad)
	}
}

func TestParseTime(t *testing.T) {
	for input, want := range map[string][2]int{"00:00": {0, 0}, "23:59": {23, 59}, " 09:05 ": {9, 5}} {
		got, err := ParseTime(input)
		require.NoError(t, err, input)
		assert.Equal(t, clock(want[0], want[1]), got, input)
	}

	for _, bad := range []string{"14:60", "24:00", "9:00", "09:5", "09.00", "", "12:00pm"} {
		_, err := ParseTime(bad)
		require.Error(t, err, bad)
		assert.Equal(t, command.MessageInvalidTime, err.Error(), bad)
	}
}

func TestParseRole(t *testing.T) {
	got, err := ParseRole(" CAREGIVER ")
	require.NoError(t, err)
	assert.Equal(t, entity.RoleCaregiver, got)

	_, err = ParseRole("patient")
	require.Error(t, err)
	assert.Equal(t, entity.RoleConstraints, err.Error())
	kind, _ := KindOf(err)
	assert.Equal(t, KindInvalidRole, kind)
}

func TestParseTags(t *testing.T) {
	got, err := ParseTags([]string{"friend", " diabetic ", "friend"})
	require.NoError(t, err)
	assert.Equal(t, []string{"friend", "diabetic"}, got)

	empty, err := ParseTags(nil)
	require.NoError(t, err)
	assert.Empty(t, empty)

	for _, bad := range [][]string{{""}, {"ok", " "}, {"best friend"}, {"#tag"}} {
		_, err := ParseTags(bad)
		require.Error(t, err)
		assert.Equal(t, command.MessageEmptyTag, err.Error())
	}
}

func TestParsePersonFields(t *testing.T) {
	name, err := ParseName("  Alice Tan ")
	require.NoError(t, err)
	assert.Equal(t, "Alice Tan", name)
	_, err = ParseName("Alice*")
	assert.EqualError(t, err, MessageNameConstraints)
	_, err = ParseName(" ")
	assert.EqualError(t, err, MessageNameConstraints)

	_, err = ParsePhone("911")
	assert.NoError(t, err)
	_, err = ParsePhone("91")
	assert.EqualError(t, err, MessagePhoneConstraints)
	_, err = ParsePhone("9123 4567")
	assert.EqualError(t, err, MessagePhoneConstraints)

	_, err = ParseEmail("alice@example.com")
	assert.NoError(t, err)
	_, err = ParseEmail("alice@")
	assert.EqualError(t, err, MessageEmailConstraints)

	_, err = ParseAddress("Blk 123, #01-01")
	assert.NoError(t, err)
	_, err = ParseAddress("   ")
	assert.EqualError(t, err, MessageAddressConstraints)
}

func TestParseKeywords(t *testing.T) {
	got, err := ParseKeywords(" alice \t bob ", command.FindUsage)
	require.NoError(t, err)
	assert.Equal(t, []string{"alice", "bob"}, got)

	_, err = ParseKeywords("  ", command.FindUsage)
	assert.EqualError(t, err, command.InvalidFormat(command.FindUsage))
}
