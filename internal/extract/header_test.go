package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wfzhang/report-extractor/constants"
	"github.com/wfzhang/report-extractor/internal/docx"
)

func TestDetectHeader(t *testing.T) {
	kw := constants.DefaultKeywords

	t.Run("single header row", func(t *testing.T) {
		table := docx.Table{Rows: [][]string{
			{"检测部位", "实测值", "单项判定"},
			{"柱1", "23.4 MPa", "合格"},
		}}
		roles, start := DetectHeader(table, kw)
		require.True(t, roles.Valid())
		assert.Equal(t, 0, roles[constants.RoleItem])
		assert.Equal(t, 1, roles[constants.RoleValue])
		assert.Equal(t, 2, roles[constants.RoleJudgment])
		assert.Equal(t, 1, start, "data rows begin after the last role-bearing header row")
	})

	t.Run("multi row header, last match wins", func(t *testing.T) {
		table := docx.Table{Rows: [][]string{
			{"检测项目", "", ""},
			{"检测部位", "芯样抗压强度", "结论"},
			{"部位", "代表值", "单项判定"},
			{"柱1", "23.4", "合格"},
		}}
		roles, start := DetectHeader(table, kw)
		require.True(t, roles.Valid())
		assert.Equal(t, 0, roles[constants.RoleItem])
		assert.Equal(t, 1, roles[constants.RoleValue])
		assert.Equal(t, 2, roles[constants.RoleJudgment])
		assert.Equal(t, 3, start)
	})

	t.Run("keyword containment not equality", func(t *testing.T) {
		table := docx.Table{Rows: [][]string{
			{"检测部位名称", "实测值(MPa)", "单项判定意见"},
			{"梁A", "30.1", "合格"},
		}}
		roles, _ := DetectHeader(table, kw)
		require.True(t, roles.Valid())
		assert.Len(t, roles, 3)
	})

	t.Run("two roles is enough", func(t *testing.T) {
		table := docx.Table{Rows: [][]string{
			{"检测部位", "实测值", "备注"},
			{"柱1", "23.4", "无"},
		}}
		roles, _ := DetectHeader(table, kw)
		assert.True(t, roles.Valid())
		assert.Len(t, roles, 2)
	})

	t.Run("one role is not enough", func(t *testing.T) {
		table := docx.Table{Rows: [][]string{
			{"检测部位", "备注", "日期"},
			{"柱1", "无", "2024-01-01"},
		}}
		roles, _ := DetectHeader(table, kw)
		assert.False(t, roles.Valid())
	})

	t.Run("single row table ineligible", func(t *testing.T) {
		table := docx.Table{Rows: [][]string{
			{"检测部位", "实测值", "单项判定"},
		}}
		roles, _ := DetectHeader(table, kw)
		assert.False(t, roles.Valid())
	})

	t.Run("keywords below row three ignored", func(t *testing.T) {
		table := docx.Table{Rows: [][]string{
			{"a", "b"},
			{"c", "d"},
			{"e", "f"},
			{"检测部位", "实测值"},
		}}
		roles, _ := DetectHeader(table, kw)
		assert.False(t, roles.Valid())
	})
}

func TestRoleMapMaxColumn(t *testing.T) {
	assert.Equal(t, -1, RoleMap{}.MaxColumn())
	m := RoleMap{constants.RoleItem: 0, constants.RoleValue: 4, constants.RoleJudgment: 2}
	assert.Equal(t, 4, m.MaxColumn())
}
