package domain

type Difficulty string

const (
	DifficultyEasy   Difficulty = "Easy"
	DifficultyMedium Difficulty = "Medium"
	DifficultyHard   Difficulty = "Hard"
)

// ProblemAuthor is the creator reference embedded in a problem document.
type ProblemAuthor struct {
	ID       string `json:"_id"`
	Username string `json:"username"`
}

// Problem represents a coding problem as served by the catalog.
type Problem struct {
	ID               string        `json:"_id"`
	Title            string        `json:"title"`
	Description      string        `json:"description"`
	Difficulty       Difficulty    `json:"difficulty"`
	ProblemStatement string        `json:"problemStatement"`
	InputFormat      string        `json:"inputFormat"`
	OutputFormat     string        `json:"outputFormat"`
	Constraints      string        `json:"constraints,omitempty"`
	Tags             []string      `json:"tags"`
	CreatedBy        ProblemAuthor `json:"createdBy"`
}

// ProblemFilters narrows a catalog listing. Zero values mean "no filter".
type ProblemFilters struct {
	Difficulty Difficulty
	Tags       string
	Search     string
}

// ProblemDraft is the payload for creating a problem directly,
// bypassing the generator.
type ProblemDraft struct {
	Title            string     `json:"title"`
	Description      string     `json:"description"`
	Difficulty       Difficulty `json:"difficulty"`
	ProblemStatement string     `json:"problemStatement"`
	InputFormat      string     `json:"inputFormat"`
	OutputFormat     string     `json:"outputFormat"`
	Constraints      string     `json:"constraints,omitempty"`
	Tags             []string   `json:"tags,omitempty"`
	TestCases        []TestCase `json:"testCases,omitempty"`
}

// ProblemPatch is a partial update. Nil fields are left untouched server-side.
type ProblemPatch struct {
	Title            *string     `json:"title,omitempty"`
	Description      *string     `json:"description,omitempty"`
	Difficulty       *Difficulty `json:"difficulty,omitempty"`
	ProblemStatement *string     `json:"problemStatement,omitempty"`
	InputFormat      *string     `json:"inputFormat,omitempty"`
	OutputFormat     *string     `json:"outputFormat,omitempty"`
	Constraints      *string     `json:"constraints,omitempty"`
	Tags             []string    `json:"tags,omitempty"`
}

// DeleteIntent captures the single problem pending a destructive
// confirmation in the catalog workflow.
type DeleteIntent struct {
	ProblemID string
	Title     string
}
