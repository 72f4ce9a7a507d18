package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFallbackExtractGeneric(t *testing.T) {
	text := "坍落度：180 mm（合格）\n含气量：4.5%（合格）"
	records := FallbackExtract(text)
	require.Len(t, records, 2)
	assert.Equal(t, Record{Item: "坍落度", Value: "180 mm", Judgment: "合格"}, records[0])
	assert.Equal(t, Record{Item: "含气量", Value: "4.5%", Judgment: "合格"}, records[1])
}

func TestFallbackExtractGenericFiltersPlaceholders(t *testing.T) {
	text := "以下空白：x（y）\n坍落度：180 mm（合格）"
	records := FallbackExtract(text)
	require.Len(t, records, 1)
	assert.Equal(t, "坍落度", records[0].Item)
}

func TestFallbackExtractCoreStrength(t *testing.T) {
	text := "检测依据……\n芯样抗压强度(MPa)见下，\n结论如下：\n实测 25.1 MPa，\n评定为合格。"
	records := FallbackExtract(text)
	require.Len(t, records, 1)
	assert.Equal(t, "混凝土抗压强度", records[0].Item)
	assert.Equal(t, "25.1 MPa", records[0].Value)
	assert.Equal(t, "合格", records[0].Judgment)
}

func TestFallbackExtractCoreStrengthUnqualified(t *testing.T) {
	text := "芯样抗压强度 结论 18.2 MPa 不合格"
	records := FallbackExtract(text)
	require.Len(t, records, 1)
	assert.Equal(t, "不合格", records[0].Judgment)
}

func TestFallbackExtractTabulated(t *testing.T) {
	text := "附表\n序号 检测部位 强度等级 芯样抗压强度(MPa) 结论\n1 柱KZ-3 C30 32.5 MPa 合格"
	records := FallbackExtract(text)
	// The tabulated span also satisfies the single-result markers, so the
	// second pass contributes a record alongside the per-location one.
	require.Len(t, records, 2)
	assert.Equal(t, "混凝土抗压强度", records[0].Item)
	assert.Equal(t, "混凝土抗压强度(部位1)", records[1].Item)
	assert.Equal(t, "32.5 MPa", records[1].Value)
	assert.Equal(t, "合格", records[1].Judgment)
}

func TestFallbackExtractAppendsAcrossPasses(t *testing.T) {
	text := "坍落度：180 mm（合格）\n芯样抗压强度 结论 25.1 MPa 合格"
	records := FallbackExtract(text)
	require.Len(t, records, 2)
	assert.Equal(t, "坍落度", records[0].Item)
	assert.Equal(t, "混凝土抗压强度", records[1].Item)
}

func TestFallbackExtractEmpty(t *testing.T) {
	assert.Empty(t, FallbackExtract("本文档不含任何可识别的检测结果。"))
}
