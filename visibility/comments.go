package visibility

import "github.com/mohitkumar/engage/facts"

const COMMENTS_SUFFIX = "Comments"

// Questions is the catalogue of Yes/No/TBD questions with a companion
// comments field.
var Questions = []string{
	"usedInCapitalRaising",
	"hasRelatedPartyTransactions",
	"involvesNewIndustry",
	"hasIndependenceThreat",
	"includesProspectiveFinancialInfo",
	"isForeignEntity",
}

func CommentField(question string) string {
	return question + COMMENTS_SUFFIX
}

// CommentVisible holds only for Yes. TBD asks for no detail yet.
func CommentVisible(a facts.Answer) bool {
	return a == facts.Yes
}
