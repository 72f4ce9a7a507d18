package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wfzhang/report-extractor/constants"
	"github.com/wfzhang/report-extractor/internal/docx"
)

func threeRoles() RoleMap {
	return RoleMap{
		constants.RoleItem:     0,
		constants.RoleValue:    1,
		constants.RoleJudgment: 2,
	}
}

func TestExtractRows(t *testing.T) {
	t.Run("plain rows", func(t *testing.T) {
		table := docx.Table{Rows: [][]string{
			{"h", "h", "h"},
			{"柱1", "23.4 MPa", "合格"},
			{"柱2", "25.0 MPa", "合格"},
		}}
		records := ExtractRows(table, threeRoles(), 1)
		require.Len(t, records, 2)
		assert.Equal(t, Record{Item: "柱1", Value: "23.4 MPa", Judgment: "合格"}, records[0])
		assert.Equal(t, Record{Item: "柱2", Value: "25.0 MPa", Judgment: "合格"}, records[1])
	})

	t.Run("item carry forward over blank merged cells", func(t *testing.T) {
		table := docx.Table{Rows: [][]string{
			{"Beam A", "23.4", "合格"},
			{"", "23.6", "合格"},
			{"", "24.1", "合格"},
			{"Beam B", "30.0", "合格"},
			{"", "29.8", "合格"},
		}}
		records := ExtractRows(table, threeRoles(), 0)
		require.Len(t, records, 5)
		assert.Equal(t, "Beam A", records[1].Item)
		assert.Equal(t, "Beam A", records[2].Item)
		assert.Equal(t, "Beam B", records[4].Item)
	})

	t.Run("judgment carry forward uses last accepted record", func(t *testing.T) {
		table := docx.Table{Rows: [][]string{
			{"柱1", "23.4", "合格"},
			{"柱1", "23.6", ""},
		}}
		records := ExtractRows(table, threeRoles(), 0)
		require.Len(t, records, 2)
		assert.Equal(t, "合格", records[1].Judgment)
	})

	t.Run("blank item on first data row is invalid", func(t *testing.T) {
		table := docx.Table{Rows: [][]string{
			{"", "23.4", "合格"},
			{"柱1", "23.6", "合格"},
		}}
		records := ExtractRows(table, threeRoles(), 0)
		require.Len(t, records, 1)
		assert.Equal(t, "柱1", records[0].Item)
	})

	t.Run("value never carried forward", func(t *testing.T) {
		table := docx.Table{Rows: [][]string{
			{"柱1", "23.4", "合格"},
			{"柱2", "", "合格"},
		}}
		records := ExtractRows(table, threeRoles(), 0)
		require.Len(t, records, 1)
	})

	t.Run("invalid row still updates carry state", func(t *testing.T) {
		// Row 2 has no value so it is dropped, but its non-blank item
		// must still feed carry-forward for row 3.
		table := docx.Table{Rows: [][]string{
			{"柱1", "23.4", "合格"},
			{"柱2", "", "合格"},
			{"", "25.0", "合格"},
		}}
		records := ExtractRows(table, threeRoles(), 0)
		require.Len(t, records, 2)
		assert.Equal(t, "柱2", records[1].Item)
	})

	t.Run("placeholder rows rejected", func(t *testing.T) {
		table := docx.Table{Rows: [][]string{
			{"柱1", "23.4", "合格"},
			{"以下空白", "—", "—"},
			{"以下无正文", "x", "y"},
		}}
		records := ExtractRows(table, threeRoles(), 0)
		require.Len(t, records, 1)
	})

	t.Run("short rows skipped", func(t *testing.T) {
		table := docx.Table{Rows: [][]string{
			{"柱1", "23.4", "合格"},
			{"柱2", "25.0"},
		}}
		records := ExtractRows(table, threeRoles(), 0)
		require.Len(t, records, 1)
	})

	t.Run("two-role map yields nothing", func(t *testing.T) {
		// With no judgment column assigned every record fails the
		// validity invariant, so an eligible two-role table still
		// produces zero records.
		roles := RoleMap{constants.RoleItem: 0, constants.RoleValue: 1}
		table := docx.Table{Rows: [][]string{
			{"柱1", "23.4"},
		}}
		records := ExtractRows(table, roles, 0)
		assert.Empty(t, records)
	})
}

func TestRecordValid(t *testing.T) {
	tests := []struct {
		name  string
		rec   Record
		valid bool
	}{
		{"complete", Record{"柱1", "23.4 MPa", "合格"}, true},
		{"empty item", Record{"", "23.4", "合格"}, false},
		{"whitespace value", Record{"柱1", "  ", "合格"}, false},
		{"empty judgment", Record{"柱1", "23.4", ""}, false},
		{"placeholder item", Record{"以下空白", "23.4", "合格"}, false},
		{"placeholder prefix item", Record{"以下无正文", "23.4", "合格"}, false},
		{"placeholder value", Record{"柱1", "以下空白", "合格"}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.valid, tt.rec.Valid())
		})
	}
}
