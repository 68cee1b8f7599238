package view

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mgacha/dashboard-services/internal/dashsvc/models"
)

func TestRenderSelectedOptions(t *testing.T) {
	r, err := NewRenderer()
	require.NoError(t, err)

	data := PageData{
		AllUsers: []models.User{
			{ID: "u1", TwitchName: "alice"},
			{ID: "u2", TwitchName: "bob"},
		},
		TopUsers:         []models.User{{ID: "u1", TwitchName: "alice", TotalUniqueCards: 5}},
		TotalUniqueCards: 9,
		SelectedUserID:   "u2",
		SelectedUserName: "bob",
		SortType:         "Rarity",
		Reverse:          true,
		SortOptions:      []string{"Number", "Alphabetical", "Rarity", "Quantity"},
		Cards: []models.CardItem{
			{Number: 1, Name: "Phoenix", Rarity: "legendary", ImageURL: "http://img/p.png", Quantity: 3},
		},
		Logs: []string{"2024-01-01 07:00:00 - pull - Phoenix - legendary"},
	}

	var buf bytes.Buffer
	require.NoError(t, r.Render(&buf, data))
	body := buf.String()

	assert.Contains(t, body, `<option value="u2" selected>bob</option>`)
	assert.Contains(t, body, `<option value="u1">alice</option>`)
	assert.Contains(t, body, `<option value="Rarity" selected>Rarity</option>`)
	// toggled reverse value goes back to 0
	assert.Contains(t, body, `value="0"`)
	assert.Contains(t, body, "5/9")
	assert.Contains(t, body, "Phoenix - legendary x3")
}

func TestRenderEmptyStates(t *testing.T) {
	r, err := NewRenderer()
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, r.Render(&buf, PageData{SortType: "Number"}))
	body := buf.String()

	assert.Contains(t, body, "No cards found")
	assert.Contains(t, body, "No history found")
}

func TestRenderEscapesNames(t *testing.T) {
	r, err := NewRenderer()
	require.NoError(t, err)

	data := PageData{
		Cards: []models.CardItem{{Name: "<script>alert(1)</script>", Rarity: "common", Quantity: 1}},
	}

	var buf bytes.Buffer
	require.NoError(t, r.Render(&buf, data))
	assert.NotContains(t, buf.String(), "<script>alert(1)</script>")
}
