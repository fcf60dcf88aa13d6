package rules

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stagefix/internal/diagnostic"
)

func TestDefault(t *testing.T) {
	rs := Default()

	assert.Equal(t, "1", rs.Version)
	assert.Equal(t, []string{"pending", "history"}, rs.Names())

	assert.Equal(t, Rule{
		Name:       "pending",
		Collection: "pendingItems",
		Message:    "No pending items",
		Columns:    "config.pendingColumns",
	}, rs.Rules[0])
	assert.Equal(t, Rule{
		Name:       "history",
		Collection: "historyItems",
		Message:    "No history items",
		Columns:    "config.historyColumns",
	}, rs.Rules[1])

	assert.True(t, Validate(rs).IsValid())
}

func TestLoadFile_YAML(t *testing.T) {
	rs, err := LoadFile(filepath.Join("testdata", "stages.yaml"))
	require.NoError(t, err)

	require.Len(t, rs.Rules, 2)
	assert.Equal(t, "pending", rs.Rules[0].Name)
	assert.Equal(t, "config.pendingColumns", rs.Rules[0].Columns)

	// Name defaults to the collection.
	assert.Equal(t, "historyItems", rs.Rules[1].Name)
	assert.Equal(t, "No history items", rs.Rules[1].Message)
}

func TestLoadFile_TOML(t *testing.T) {
	rs, err := LoadFile(filepath.Join("testdata", "stages.toml"))
	require.NoError(t, err)

	assert.Equal(t, "1", rs.Version)
	require.Len(t, rs.Rules, 2)
	assert.Equal(t, Rule{
		Name:       "dispatch",
		Collection: "dispatchItems",
		Message:    "Nothing to dispatch",
		Columns:    "config.dispatchColumns",
	}, rs.Rules[0])
	assert.Equal(t, "historyItems", rs.Rules[1].Name)
}

func TestLoadFile_Errors(t *testing.T) {
	dir := t.TempDir()

	t.Run("unsupported extension", func(t *testing.T) {
		_, err := LoadFile(filepath.Join(dir, "rules.json"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unsupported rules file extension")
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadFile(filepath.Join(dir, "missing.yaml"))
		require.Error(t, err)
		assert.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("unknown yaml field", func(t *testing.T) {
		p := filepath.Join(dir, "typo.yaml")
		require.NoError(t, os.WriteFile(p, []byte("rules:\n  - collection: a\n    mesage: x\n"), 0o644))

		_, err := LoadFile(p)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to parse rules YAML")
	})

	t.Run("unknown toml key", func(t *testing.T) {
		p := filepath.Join(dir, "typo.toml")
		require.NoError(t, os.WriteFile(p, []byte("[[rules]]\ncollection = \"a\"\nmesage = \"x\"\n"), 0o644))

		_, err := LoadFile(p)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unknown key")
	})
}

func TestParse_EmptyYAML(t *testing.T) {
	rs, err := Parse(nil, FormatYAML)
	require.NoError(t, err)
	assert.Equal(t, "1", rs.Version)
	assert.Empty(t, rs.Rules)

	diags := Validate(rs)
	require.Len(t, diags.Errors, 1)
	assert.Equal(t, diagnostic.CodeEmptyRuleSet, diags.Errors[0].Code)
}

func TestMarshal_RoundTripsDefault(t *testing.T) {
	data, err := Marshal(Default())
	require.NoError(t, err)

	assert.Contains(t, string(data), "collection: pendingItems")
	assert.Contains(t, string(data), "columns: config.historyColumns")

	back, err := Parse(data, FormatYAML)
	require.NoError(t, err)
	assert.Equal(t, Default(), back)
}

func TestValidate(t *testing.T) {
	valid := Rule{Name: "r", Collection: "items", Message: "No items", Columns: "config.columns"}

	tests := []struct {
		name     string
		mutate   func(r *Rule)
		wantCode string
		suggest  []string
	}{
		{"valid", func(*Rule) {}, "", nil},
		{"collection with dot", func(r *Rule) { r.Collection = "state.items" }, diagnostic.CodeInvalidCollection, []string{"stateItems"}},
		{"collection with space", func(r *Rule) { r.Collection = "pending items" }, diagnostic.CodeInvalidCollection, []string{"pendingItems"}},
		{"empty collection", func(r *Rule) { r.Collection = "" }, diagnostic.CodeInvalidCollection, nil},
		{"empty message", func(r *Rule) { r.Message = "  " }, diagnostic.CodeInvalidMessage, nil},
		{"multi-line message", func(r *Rule) { r.Message = "No\nitems" }, diagnostic.CodeInvalidMessage, nil},
		{"markup in message", func(r *Rule) { r.Message = "<b>No</b> items" }, diagnostic.CodeInvalidMessage, nil},
		{"columns expression", func(r *Rule) { r.Columns = "config.columns.length + 1" }, diagnostic.CodeInvalidColumns, []string{"config.columns"}},
		{"pasted colSpan", func(r *Rule) { r.Columns = "{config.columns.length + 1}" }, diagnostic.CodeInvalidColumns, []string{"config.columns"}},
		{"empty columns", func(r *Rule) { r.Columns = "" }, diagnostic.CodeInvalidColumns, []string{"config.rColumns"}},
		{"dashed columns", func(r *Rule) { r.Columns = "config.pending-columns" }, diagnostic.CodeInvalidColumns, nil},
		{"plain columns identifier", func(r *Rule) { r.Columns = "columns" }, "", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := valid
			tt.mutate(&r)

			diags := Validate(&RuleSet{Rules: []Rule{r}})
			if tt.wantCode == "" {
				assert.True(t, diags.IsValid(), "unexpected: %v", diags.Error())
				return
			}

			require.Len(t, diags.Errors, 1)
			assert.Equal(t, tt.wantCode, diags.Errors[0].Code)
			assert.Equal(t, "r", diags.Errors[0].Rule)
			assert.Equal(t, tt.suggest, diags.Errors[0].Suggestions)
		})
	}
}

func TestValidate_DuplicateNames(t *testing.T) {
	rs := Default()
	rs.Rules[1].Name = "pending"

	diags := Validate(rs)
	require.Len(t, diags.Errors, 1)
	assert.Equal(t, diagnostic.CodeDuplicateRule, diags.Errors[0].Code)
	assert.EqualError(t, diags.Error(), `[pending]: [duplicate_rule] duplicate rule "pending"`)
}

func TestValidate_Nil(t *testing.T) {
	assert.True(t, Validate(nil).HasErrors())
}
