package review

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fullHeader = "question,true_answer,predicted_answer_full,is_correct," +
	"Grammar,Factuality,Hallucination,Redundancy,Repetition,Missing Step,Coherency,Commonsense,Arithmetic"

func TestParseAugmentsMissingCategoryColumns(t *testing.T) {
	// Scenario: input carries only the four fixed columns.
	input := "question,true_answer,predicted_answer_full,is_correct\n" +
		"Q1,A1,P1,False\n" +
		"Q2,A2,P2,True\n"
	set, err := Parse(strings.NewReader(input))
	require.NoError(t, err)

	require.Len(t, set.Columns(), 13)
	require.Equal(t, 2, set.Len())
	for i := 0; i < set.Len(); i++ {
		rec := set.Row(i)
		for _, c := range Categories() {
			assert.Equal(t, No, rec.Answer(c), "row %d category %s", i, c)
		}
	}
	assert.False(t, set.Row(0).Correct())
	assert.True(t, set.Row(1).Correct())
}

func TestParseAllRequiredFieldsPresent(t *testing.T) {
	input := fullHeader + "\nQ,A,P,False,Yes,No,Yes,No,No,No,No,No,Maybe\n"
	set, err := Parse(strings.NewReader(input))
	require.NoError(t, err)
	rec := set.Row(0)
	for _, col := range RequiredFields() {
		_, ok := rec[col]
		assert.True(t, ok, "missing field %s", col)
	}
	for _, c := range Categories() {
		v := rec.Answer(c)
		assert.True(t, v == Yes || v == No, "non-canonical token for %s: %q", c, v)
	}
}

func TestParseMissingRequiredColumns(t *testing.T) {
	input := "question,true_answer\nQ,A\n"
	set, err := Parse(strings.NewReader(input))
	require.Nil(t, set)
	var missingErr *MissingColumnsError
	require.ErrorAs(t, err, &missingErr)
	assert.ElementsMatch(t, []string{"predicted_answer_full", "is_correct"}, missingErr.Missing)
}

func TestParseNormalizesMalformedTokens(t *testing.T) {
	// Scenario: a stored category value outside the two-token domain.
	input := "question,true_answer,predicted_answer_full,is_correct,Arithmetic\n" +
		"Q,A,P,False,Maybe\n"
	set, err := Parse(strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, No, set.Row(0).Answer(CategoryArithmetic))
}

func TestParseForcesLockedRowsToNo(t *testing.T) {
	input := "question,true_answer,predicted_answer_full,is_correct,Grammar\n" +
		"Q,A,P, TRUE ,Yes\n"
	set, err := Parse(strings.NewReader(input))
	require.NoError(t, err)
	rec := set.Row(0)
	require.True(t, rec.Correct())
	for _, c := range Categories() {
		assert.Equal(t, No, rec.Answer(c))
	}
}

func TestParseTrimsHeaderBOM(t *testing.T) {
	input := "\ufeff" + fullHeader + "\nQ,A,P,False,No,No,No,No,No,No,No,No,No\n"
	set, err := Parse(strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, "question", set.Columns()[0])
	assert.Equal(t, "Q", set.Row(0).Question())
}

func TestSerializeRoundTrip(t *testing.T) {
	input := fullHeader + "\n" +
		"Q1,A1,P1,False,Yes,No,No,No,No,No,No,No,Maybe\n" +
		"Q2,A2,P2,True,Yes,Yes,Yes,Yes,Yes,Yes,Yes,Yes,Yes\n" +
		"Q3,A3,P3,False,No,No,No,No,No,No,No,No,No\n"
	set, err := Parse(strings.NewReader(input))
	require.NoError(t, err)

	var out strings.Builder
	require.NoError(t, set.Serialize(&out))
	again, err := Parse(strings.NewReader(out.String()))
	require.NoError(t, err)

	require.Equal(t, set.Len(), again.Len())
	require.Equal(t, set.Columns(), again.Columns())
	for i := 0; i < set.Len(); i++ {
		for _, col := range RequiredFields() {
			assert.Equal(t, set.Row(i)[col], again.Row(i)[col], "row %d column %s", i, col)
		}
	}
	// Malformed token normalized, locked row forced to all-No.
	assert.Equal(t, No, again.Row(0).Answer(CategoryArithmetic))
	for _, c := range Categories() {
		assert.Equal(t, No, again.Row(1).Answer(c))
	}
}

func TestSerializeKeepsRowOrder(t *testing.T) {
	input := "question,true_answer,predicted_answer_full,is_correct\n" +
		"Q3,A,P,False\nQ1,A,P,False\nQ2,A,P,False\n"
	set, err := Parse(strings.NewReader(input))
	require.NoError(t, err)
	var out strings.Builder
	require.NoError(t, set.Serialize(&out))
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 4)
	assert.True(t, strings.HasPrefix(lines[1], "Q3,"))
	assert.True(t, strings.HasPrefix(lines[2], "Q1,"))
	assert.True(t, strings.HasPrefix(lines[3], "Q2,"))
}

func TestSerializeIncludesCategoryColumnsForMissingFields(t *testing.T) {
	set := &RecordSet{
		columns: []string{"question", "true_answer", "predicted_answer_full", "is_correct"},
		rows:    []Record{{"question": "Q", "true_answer": "A", "predicted_answer_full": "P", "is_correct": "False"}},
	}
	var out strings.Builder
	require.NoError(t, set.Serialize(&out))
	again, err := Parse(strings.NewReader(out.String()))
	require.NoError(t, err)
	require.Len(t, again.Columns(), 13)
	for _, c := range Categories() {
		assert.Equal(t, No, again.Row(0).Answer(c))
	}
}

func TestLoadFileMissingFile(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "absent.csv"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestSaveAnnotatedDerivesOutputPath(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "batch7.csv")
	input := "question,true_answer,predicted_answer_full,is_correct\nQ,A,P,False\n"
	require.NoError(t, os.WriteFile(src, []byte(input), 0o644))

	set, err := LoadFile(src)
	require.NoError(t, err)

	cfg := Config{OutputDir: filepath.Join(dir, "results")}
	outPath, err := set.SaveAnnotated(src, cfg)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "results", "annotated_batch7.csv"), outPath)

	saved, err := LoadFile(outPath)
	require.NoError(t, err)
	require.Equal(t, 1, saved.Len())
	assert.Equal(t, "Q", saved.Row(0).Question())
}
