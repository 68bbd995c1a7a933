package facts

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/mohitkumar/engage/logger"
	"github.com/mohitkumar/engage/step"
	"github.com/oliveagle/jsonpath"
	"go.uber.org/zap"
)

// Paths maps engagement facts onto JSONPath expressions evaluated against the
// engagement document loaded from the approval backend.
type Paths struct {
	CurrentStepId      string `mapstructure:"current-step-id"`
	InstanceId         string `mapstructure:"instance-id"`
	IsAttest           string `mapstructure:"is-attest"`
	JobRoles           string `mapstructure:"job-roles"`
	RoleId             string `mapstructure:"role-id"`
	BillToClientNumber string `mapstructure:"bill-to-client-number"`
	ClientSearchType   string `mapstructure:"client-search-type"`
	ClientNumber       string `mapstructure:"client-number"`
	Answers            string `mapstructure:"answers"`
}

func DefaultPaths() Paths {
	return Paths{
		CurrentStepId:      "$.workflow.currentStepId",
		InstanceId:         "$.workflow.instanceId",
		IsAttest:           "$.engagement.isAttest",
		JobRoles:           "$.engagement.jobRoles",
		RoleId:             "$.roleId",
		BillToClientNumber: "$.engagement.billToClientNumber",
		ClientSearchType:   "$.client.searchType",
		ClientNumber:       "$.client.clientNumber",
		Answers:            "$.engagement.answers",
	}
}

type ExtractError struct {
	Message string
}

func (e ExtractError) Error() string {
	return fmt.Sprintf("can not extract engagement facts: %s", e.Message)
}

type Extractor struct {
	paths Paths
}

func NewExtractor(paths Paths) *Extractor {
	return &Extractor{paths: paths}
}

// Extract builds a document from raw engagement JSON. Paths that do not
// resolve leave the matching fact absent; only malformed JSON is an error.
func (x *Extractor) Extract(id string, raw []byte) (*Document, error) {
	var doc any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, ExtractError{Message: err.Error()}
	}
	out := &Document{Id: id}
	out.CurrentStepId = stepIdOf(x.lookup(doc, x.paths.CurrentStepId))

	if v, ok := x.lookup(doc, x.paths.InstanceId).(string); ok {
		out.Facts.InstanceId = &v
	}
	if v, ok := x.lookup(doc, x.paths.IsAttest).(bool); ok {
		out.Facts.IsAttest = &v
	}
	if roles, ok := x.lookup(doc, x.paths.JobRoles).([]any); ok {
		for _, r := range roles {
			if roleId, ok := x.lookup(r, x.paths.RoleId).(float64); ok {
				out.Facts.JobRoles = append(out.Facts.JobRoles, JobRole{RoleId: RoleId(roleId)})
			}
		}
	}
	out.Facts.BillToClientNumber = clientNumberOf(x.lookup(doc, x.paths.BillToClientNumber))
	if v, ok := x.lookup(doc, x.paths.ClientSearchType).(string); ok {
		out.Facts.ClientSearchType = v
	}
	out.Facts.ClientNumber = clientNumberOf(x.lookup(doc, x.paths.ClientNumber))

	if answers, ok := x.lookup(doc, x.paths.Answers).(map[string]any); ok {
		out.Facts.Answers = make(map[string]Answer, len(answers))
		for q, a := range answers {
			if s, ok := a.(string); ok {
				out.Facts.Answers[q] = ParseAnswer(s)
			} else {
				out.Facts.Answers[q] = Unanswered
			}
		}
	}
	return out, nil
}

func (x *Extractor) lookup(doc any, path string) any {
	if path == "" {
		return nil
	}
	value, err := jsonpath.JsonPathLookup(doc, path)
	if err != nil {
		logger.Debug("path not resolved in engagement document", zap.String("path", path), zap.Error(err))
		return nil
	}
	return value
}

func stepIdOf(v any) step.Id {
	switch t := v.(type) {
	case float64:
		if t != float64(int(t)) {
			return step.None
		}
		return step.Id(int(t))
	case string:
		n, err := strconv.Atoi(t)
		if err != nil {
			return step.None
		}
		return step.Id(n)
	default:
		return step.None
	}
}
