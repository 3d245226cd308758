package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNullable_DistinguishesAbsentNullAndValue(t *testing.T) {
	type patch struct {
		Note Nullable[string] `json:"note"`
	}

	var absent patch
	require.NoError(t, json.Unmarshal([]byte(`{}`), &absent))
	assert.False(t, absent.Note.Set)

	var null patch
	require.NoError(t, json.Unmarshal([]byte(`{"note":null}`), &null))
	assert.True(t, null.Note.Set)
	assert.True(t, null.Note.Null)

	var value patch
	require.NoError(t, json.Unmarshal([]byte(`{"note":"hi"}`), &value))
	assert.True(t, value.Note.Set)
	assert.False(t, value.Note.Null)
	assert.Equal(t, "hi", value.Note.Value)

	var wrongType patch
	assert.Error(t, json.Unmarshal([]byte(`{"note":5}`), &wrongType))
}

func TestTaskEnums(t *testing.T) {
	assert.True(t, TaskStatusInProgress.Valid())
	assert.False(t, TaskStatus("done").Valid())
	assert.True(t, TaskPriorityLow.Valid())
	assert.False(t, TaskPriority("urgent").Valid())

	assert.Less(t, TaskPriorityHigh.Rank(), TaskPriorityNormal.Rank())
	assert.Less(t, TaskPriorityNormal.Rank(), TaskPriorityLow.Rank())
}
