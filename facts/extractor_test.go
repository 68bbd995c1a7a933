package facts

import (
	"errors"
	"testing"

	"github.com/mohitkumar/engage/step"
	"github.com/stretchr/testify/require"
)

const engagementDoc = `{
	"workflow": {"currentStepId": 100040, "instanceId": "wf-9"},
	"engagement": {
		"isAttest": true,
		"jobRoles": [{"roleId": 1}, {"roleId": 3}, {"name": "no role"}],
		"billToClientNumber": 0,
		"answers": {"usedInCapitalRaising": "Yes", "isForeignEntity": "yes", "other": 3}
	},
	"client": {"searchType": "Existing", "clientNumber": "C-100"}
}`

func TestExtract(t *testing.T) {
	x := NewExtractor(DefaultPaths())
	doc, err := x.Extract("eng-1", []byte(engagementDoc))
	require.NoError(t, err)

	require.Equal(t, "eng-1", doc.Id)
	require.Equal(t, step.RelationshipPartnerApproval, doc.CurrentStepId)
	require.NotNil(t, doc.Facts.InstanceId)
	require.Equal(t, "wf-9", *doc.Facts.InstanceId)
	require.NotNil(t, doc.Facts.IsAttest)
	require.True(t, *doc.Facts.IsAttest)
	require.Equal(t, []JobRole{{RoleId: RoleRelationshipPartner}, {RoleId: RoleBiller}}, doc.Facts.JobRoles)
	require.True(t, doc.Facts.HasBiller())
	require.True(t, doc.Facts.HasBillToClient())
	require.Equal(t, "0", doc.Facts.BillToClientNumber.String())
	require.Equal(t, EXISTING_CLIENT_SEARCH, doc.Facts.ClientSearchType)
	require.Equal(t, "C-100", doc.Facts.ClientNumber.String())
	require.Equal(t, Yes, doc.Facts.Answer("usedInCapitalRaising"))
	require.Equal(t, Unanswered, doc.Facts.Answer("isForeignEntity"))
	require.Equal(t, Unanswered, doc.Facts.Answer("other"))
}

func TestExtractMissingPaths(t *testing.T) {
	x := NewExtractor(DefaultPaths())
	doc, err := x.Extract("eng-2", []byte(`{"workflow": {"currentStepId": null}}`))
	require.NoError(t, err)
	require.Equal(t, step.None, doc.CurrentStepId)
	require.Nil(t, doc.Facts.IsAttest)
	require.Nil(t, doc.Facts.InstanceId)
	require.Empty(t, doc.Facts.JobRoles)
	require.False(t, doc.Facts.HasBillToClient())
	require.False(t, doc.Facts.ClientNumber.Present())
}

func TestExtractMalformed(t *testing.T) {
	x := NewExtractor(DefaultPaths())
	_, err := x.Extract("eng-3", []byte(`{"workflow":`))
	var extractErr ExtractError
	require.True(t, errors.As(err, &extractErr))
}

func TestExtractCustomPaths(t *testing.T) {
	paths := DefaultPaths()
	paths.CurrentStepId = "$.step"
	paths.IsAttest = ""
	x := NewExtractor(paths)
	doc, err := x.Extract("eng-4", []byte(`{"step": "100120", "engagement": {"isAttest": false}}`))
	require.NoError(t, err)
	require.Equal(t, step.InternalAccountingForeignDataEntry, doc.CurrentStepId)
	require.Nil(t, doc.Facts.IsAttest)
}
