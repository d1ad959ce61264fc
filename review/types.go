package review

import (
	"fmt"
	"strings"
)

// Answer is a canonical yes/no annotation value.
type Answer string

const (
	Yes Answer = "Yes"
	No  Answer = "No"
)

// Answers maps every category to its current yes/no value.
type Answers map[Category]Answer

// Clone returns an independent copy so workflows can hand answer sets
// across without aliasing each other's state.
func (a Answers) Clone() Answers {
	out := make(Answers, len(a))
	for c, v := range a {
		out[c] = v
	}
	return out
}

// allNo returns a full answer set with every category set to No.
func allNo() Answers {
	out := make(Answers, CategoryCount)
	for _, c := range categoryOrder {
		out[c] = No
	}
	return out
}

// Field names every input file must provide (the nine category columns are
// appended automatically when absent).
const (
	FieldQuestion        = "question"
	FieldTrueAnswer      = "true_answer"
	FieldPredictedAnswer = "predicted_answer_full"
	FieldIsCorrect       = "is_correct"
)

func fixedRequiredFields() []string {
	return []string{FieldQuestion, FieldTrueAnswer, FieldPredictedAnswer, FieldIsCorrect}
}

// RequiredFields returns the full required column set: the four fixed
// fields followed by the nine category columns.
func RequiredFields() []string {
	out := fixedRequiredFields()
	for _, c := range categoryOrder {
		out = append(out, string(c))
	}
	return out
}

// Record is one data row keyed by column name.
type Record map[string]string

// Question returns the row's question text.
func (r Record) Question() string { return r[FieldQuestion] }

// TrueAnswer returns the row's reference answer.
func (r Record) TrueAnswer() string { return r[FieldTrueAnswer] }

// PredictedAnswer returns the model's full predicted answer.
func (r Record) PredictedAnswer() string { return r[FieldPredictedAnswer] }

// Correct reports whether the row is marked correct and therefore locked:
// its is_correct value trims and case-folds to "true".
func (r Record) Correct() bool {
	return strings.EqualFold(strings.TrimSpace(r[FieldIsCorrect]), "true")
}

// Answer returns the stored value for a category, coerced into the
// canonical token domain.
func (r Record) Answer(c Category) Answer {
	return NormalizeAnswer(r[string(c)])
}

// Answers returns the row's stored category values as a full answer set.
func (r Record) Answers() Answers {
	out := make(Answers, CategoryCount)
	for _, c := range categoryOrder {
		out[c] = r.Answer(c)
	}
	return out
}

func (r Record) setAnswers(a Answers) {
	for _, c := range categoryOrder {
		v, ok := a[c]
		if !ok {
			v = No
		}
		r[string(c)] = string(v)
	}
}

// RecordSet is the ordered in-memory dataset parsed from one file.
type RecordSet struct {
	columns []string
	rows    []Record
}

// Columns returns the field set in output order.
func (s *RecordSet) Columns() []string {
	out := make([]string, len(s.columns))
	copy(out, s.columns)
	return out
}

// Len returns the number of data rows.
func (s *RecordSet) Len() int { return len(s.rows) }

// Row returns the record at index i. The store keeps ownership; mutations
// go through the cursor's commit step.
func (s *RecordSet) Row(i int) Record { return s.rows[i] }

// Value returns the cell at (row, column name), or "" when absent.
func (s *RecordSet) Value(row int, column string) string {
	if row < 0 || row >= len(s.rows) {
		return ""
	}
	return s.rows[row][column]
}

// MissingColumnsError reports required columns still absent after the
// category columns were augmented.
type MissingColumnsError struct {
	Missing []string
}

func (e *MissingColumnsError) Error() string {
	return fmt.Sprintf("missing required columns: %s", strings.Join(e.Missing, ", "))
}

// LockedRowError reports an edit or drill-down attempt on a row whose
// is_correct flag is set. It is an informational skip, not a failure.
type LockedRowError struct {
	Row int
}

func (e *LockedRowError) Error() string {
	return fmt.Sprintf("row %d is marked correct, no classification needed", e.Row+1)
}
