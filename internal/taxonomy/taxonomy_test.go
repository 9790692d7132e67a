package taxonomy

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeName(t *testing.T) {
	assert.Equal(t, "Gadgets", NormalizeName("  Gadgets "))
	assert.Equal(t, "", NormalizeName("   "))
}

func TestNamesEqual_CaseInsensitive(t *testing.T) {
	assert.True(t, NamesEqual("Gadgets", " gadgets "))
	assert.True(t, NamesEqual("GADGETS", "gadgets"))
	assert.False(t, NamesEqual("Gadgets", "Widgets"))
}

func TestIsSentinelName(t *testing.T) {
	assert.True(t, IsSentinelName("Uncategorized"))
	assert.True(t, IsSentinelName(" deleted category "))
	assert.False(t, IsSentinelName("Groceries"))
}

func TestParseReportClass(t *testing.T) {
	rc, err := ParseReportClass(" Auto ")
	assert.NoError(t, err)
	assert.Equal(t, ReportClassAuto, rc)

	rc, err = ParseReportClass("TRANSFER")
	assert.NoError(t, err)
	assert.Equal(t, ReportClassTransfer, rc)

	_, err = ParseReportClass("weird")
	assert.True(t, IsKind(err, KindValidation))
}

func TestKindOf(t *testing.T) {
	err := Conflictf("category name already exists: %s", "Gadgets")
	kind, ok := KindOf(err)
	assert.True(t, ok)
	assert.Equal(t, KindConflict, kind)

	wrapped := fmt.Errorf("create category: %w", err)
	assert.True(t, IsKind(wrapped, KindConflict))

	_, ok = KindOf(fmt.Errorf("plain"))
	assert.False(t, ok)
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "protected", KindProtected.String())
	assert.Equal(t, "fatal_invariant", KindFatalInvariant.String())
}
