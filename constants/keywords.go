package constants

// Role is the semantic category of a table column.
type Role string

// Stable values (used as map keys and in keyword-override files).
const (
	RoleItem     Role = "item"     // 检测项目 / 检测部位 column
	RoleValue    Role = "value"    // 实测值 column
	RoleJudgment Role = "judgment" // 单项判定 column
)

// DefaultKeywords maps each role to its header synonyms. A header cell
// claims a role when its text contains any synonym as a substring.
var DefaultKeywords = map[Role][]string{
	RoleItem:     {"检测项目", "项目", "检测内容", "检测部位", "部位"},
	RoleValue:    {"实测值", "实测结果", "数值", "结果", "强度", "芯样抗压强度", "代表值"},
	RoleJudgment: {"单项判定", "单项结论", "判定", "结论"},
}

// BlankBelowPlaceholder is the cell text reports use to mark the end of
// real data rows ("nothing further below").
const BlankBelowPlaceholder = "以下空白"

// BlankBelowPrefix prefixes any variant of the placeholder.
const BlankBelowPrefix = "以下"

// UnknownDate is the sentinel emitted when no test date can be found.
const UnknownDate = "未知"
