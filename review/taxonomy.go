package review

// Category identifies one of the nine error types annotated per row.
type Category string

const (
	CategoryGrammar       Category = "Grammar"
	CategoryFactuality    Category = "Factuality"
	CategoryHallucination Category = "Hallucination"
	CategoryRedundancy    Category = "Redundancy"
	CategoryRepetition    Category = "Repetition"
	CategoryMissingStep   Category = "Missing Step"
	CategoryCoherency     Category = "Coherency"
	CategoryCommonsense   Category = "Commonsense"
	CategoryArithmetic    Category = "Arithmetic"
)

// categoryOrder fixes the annotation order; it doubles as the column order
// when missing category columns are appended to a loaded file.
var categoryOrder = []Category{
	CategoryGrammar,
	CategoryFactuality,
	CategoryHallucination,
	CategoryRedundancy,
	CategoryRepetition,
	CategoryMissingStep,
	CategoryCoherency,
	CategoryCommonsense,
	CategoryArithmetic,
}

var categoryPrompts = map[Category]string{
	CategoryGrammar: `**Grammar Error**
**CSV Question**:
"Does this step contain faulty, unconventional, or controversial grammar usage? In other words, does the language in this step sound unnatural?"
`,
	CategoryFactuality: `**Factuality Error**
**CSV Question**:
"Does this step contain information that contradicts the context? Note that the step should be relevant to the context in general (unlike hallucination), but information about objects (i.e. quantity, characteristics) or a personal named entity does not match information provided in the question. Note that if this step contradicts context/question BECAUSE of the errors in the previous step, it is NOT a factual error. Factual error is an error when the information provided in the context was explicitly changed."
`,
	CategoryHallucination: `**Hallucination Error**
**CSV Question**:
"Does this step build mostly on information that is not provided in the problem statement, and is irrelevant or wrong?"
`,
	CategoryRedundancy: `**Redundancy**
**CSV Question**:
"Does this step contain factual (i.e. consistent with context) information, but the whole step is not required to answer the question asked?"
`,
	CategoryRepetition: `**Repetition**
**CSV Question**:
"Does this step paraphrase information already mentioned in previous steps and can be dropped from the chain (i.e., the whole step is not required to answer the final question, because it does not bring any new information)? Note that the answer-step, that summarizes all previous steps (for ex., 'So the final answer is 3', or 'The answer is yes') does NOT count as repetition."
`,
	CategoryMissingStep: `**Missing Step**
**CSV Question**:
"Is the content of the generated reasoning incomplete and lacks required information to produce the correct answer? If these missing steps are added, the model could produce the correct answer, meaning that the chain contains several relevant and mostly correct steps, and produced an answer based on those while it should have made an extra effort."
`,
	CategoryCoherency: `**Coherency**
**CSV Question**:
"Do steps contradict each other or do not follow a cohesive story? I.e., you can explicitly show that from Steps i and k follows step not j (for example: A has 3 apples, B has 2. How much more apples does A have? Chain: A has 3 apples. So A has 3-2=1 apples more. The answer is 3. - Conclusion contradicts Step 2)."
`,
	CategoryCommonsense: `**Commonsense Error**
**CSV Question**:
"Does this step produce an error in relations that should be known from general knowledge about the world (i.e., how to compute velocity, how many inches in one foot, all ducks are birds, etc.)? Note that this general knowledge should NOT be provided in the context or question."
`,
	CategoryArithmetic: `**Arithmetic Error**
**CSV Question**:
"Does this step contain an error in a math equation? Note that you should consider only the current step in isolation; if the error was produced in previous steps and the wrong number is carried over, that does not count."
`,
}

// Categories returns the nine error categories in annotation order.
func Categories() []Category {
	out := make([]Category, len(categoryOrder))
	copy(out, categoryOrder)
	return out
}

// CategoryCount is the number of annotated error categories.
const CategoryCount = 9

// Prompt returns the explanatory prompt shown when annotating the category.
// Every fixed category has a prompt; asking for an unknown one is a
// programming defect and panics rather than returning an error.
func Prompt(c Category) string {
	text, ok := categoryPrompts[c]
	if !ok {
		panic("review: no prompt for category " + string(c))
	}
	return text
}
