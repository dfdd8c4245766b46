package domain

import "encoding/json"

// UxItemRow holds the columns UX problems and UX solutions share. It is also
// the shape either side embeds when joined through ux_problem_solutions.
type UxItemRow struct {
	ID          string          `json:"id"`
	Slug        string          `json:"slug"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Content     json.RawMessage `json:"content"`
	SortOrder   int             `json:"sort_order"`
	Featured    bool            `json:"featured"`
	Icons       Many[Icon]      `json:"icons"`
}

type UxProblemRow struct {
	UxItemRow
	Solutions Many[Link[UxItemRow]] `json:"ux_problem_solutions"`
}

type UxSolutionRow struct {
	UxItemRow
	Problems Many[Link[UxItemRow]] `json:"ux_problem_solutions"`
}
