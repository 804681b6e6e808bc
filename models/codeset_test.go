package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCodeSetOrdersAndFilters(t *testing.T) {
	got := ParseCodeSet(" xl,S,zz,,s ", AllSizes)
	assert.Equal(t, CodeSet[Size]{SizeSmall, SizeExtraLarge}, got)
	assert.Equal(t, "s,xl", got.String())

	assert.Empty(t, ParseCodeSet("", AllGenders))
	assert.Empty(t, NewCodeSet([]Gender{GenderUnknown}, AllGenders))
}

func TestCodeSetJSONAcceptsStringOrArray(t *testing.T) {
	var fromString, fromArray struct {
		Age CodeSet[AgeBand] `json:"age"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"age":"b,y"}`), &fromString))
	require.NoError(t, json.Unmarshal([]byte(`{"age":["b","y"]}`), &fromArray))
	assert.Equal(t, fromString.Age, fromArray.Age)

	out, err := json.Marshal(fromArray)
	require.NoError(t, err)
	assert.JSONEq(t, `{"age":"b,y"}`, string(out))

	assert.Error(t, json.Unmarshal([]byte(`{"age":7}`), &fromString))
}

func TestCodeSetScan(t *testing.T) {
	var set CodeSet[AgeBand]
	require.NoError(t, set.Scan("b,a"))
	assert.True(t, set.Contains(AgeAdult))
	assert.False(t, set.Contains(AgeSenior))

	require.NoError(t, set.Scan([]byte("s")))
	assert.Equal(t, "s", set.String())

	require.NoError(t, set.Scan(nil))
	assert.Empty(t, set)
	assert.Error(t, set.Scan(3.14))
}

func TestDefaultUserPref(t *testing.T) {
	p := DefaultUserPref("abc")
	assert.Equal(t, "abc", p.ExternalUserID)
	assert.NotEmpty(t, p.ID)
	assert.Equal(t, "b,y,a,s", p.Age.String())
	assert.Equal(t, "m,f", p.Gender.String())
	assert.Equal(t, "s,m,l,xl", p.Size.String())
}

func TestParseGenderAndSize(t *testing.T) {
	assert.Equal(t, GenderFemale, ParseGender("Female"))
	assert.Equal(t, GenderUnknown, ParseGender("?"))
	assert.Equal(t, SizeExtraLarge, ParseSize("extra-large"))
	assert.Equal(t, SizeExtraLarge, ParseSize("XL"))
	assert.Equal(t, SizeUnknown, ParseSize("huge"))
	assert.True(t, ValidAge(1))
	assert.False(t, ValidAge(200))
}
