// Package step holds the closed set of approval workflow steps the UI knows
// about. Step ids are assigned by the external workflow backend; anything not
// listed here is treated as unknown and never matches a rule.
package step

import (
	"fmt"
	"sort"
	"strconv"
)

type Id int

// None is the step of an engagement whose workflow has not been started.
const None Id = 0

const (
	Draft                              Id = 100037
	RelationshipPartnerApproval        Id = 100040
	IndustryGroupLeaderApproval        Id = 100045
	SecApproval                        Id = 100050
	EbpaApproval                       Id = 100055
	PumApproval                        Id = 100060
	PmfaPumApproval                    Id = 100065
	PmiaPartnerApproval                Id = 100070
	PmtPartnerApproval                 Id = 100075
	ConflictCheck                      Id = 100080
	ClientAcceptance                   Id = 100090
	InternalAccountingDataEntry        Id = 100110
	InternalAccountingForeignDataEntry Id = 100120
)

type Step struct {
	Name string `json:"name"`
	Id   Id     `json:"id"`
}

var known = []Step{
	{Name: "draft", Id: Draft},
	{Name: "relationshipPartnerApproval", Id: RelationshipPartnerApproval},
	{Name: "industryGroupLeaderApproval", Id: IndustryGroupLeaderApproval},
	{Name: "secApproval", Id: SecApproval},
	{Name: "ebpaApproval", Id: EbpaApproval},
	{Name: "pumApproval", Id: PumApproval},
	{Name: "pmfaPumApproval", Id: PmfaPumApproval},
	{Name: "pmiaPartnerApproval", Id: PmiaPartnerApproval},
	{Name: "pmtPartnerApproval", Id: PmtPartnerApproval},
	{Name: "conflictCheck", Id: ConflictCheck},
	{Name: "clientAcceptance", Id: ClientAcceptance},
	{Name: "internalAccountingDataEntry", Id: InternalAccountingDataEntry},
	{Name: "internalAccountingForeignDataEntry", Id: InternalAccountingForeignDataEntry},
}

var (
	byName = make(map[string]Id, len(known))
	byId   = make(map[Id]string, len(known))
)

func init() {
	for _, s := range known {
		if _, ok := byName[s.Name]; ok {
			panic(fmt.Sprintf("duplicate step name %s", s.Name))
		}
		if _, ok := byId[s.Id]; ok || s.Id == None {
			panic(fmt.Sprintf("invalid step id %d for %s", s.Id, s.Name))
		}
		byName[s.Name] = s.Id
		byId[s.Id] = s.Name
	}
}

type UnknownStepNameError struct {
	Name string
}

func (e UnknownStepNameError) Error() string {
	return fmt.Sprintf("unknown workflow step name %q", e.Name)
}

// IdOf resolves a step name. An unknown name is a coding defect, so callers
// building static tables should prefer MustIdOf.
func IdOf(name string) (Id, error) {
	id, ok := byName[name]
	if !ok {
		return None, UnknownStepNameError{Name: name}
	}
	return id, nil
}

func MustIdOf(name string) Id {
	id, err := IdOf(name)
	if err != nil {
		panic(err)
	}
	return id
}

// IsOneOf reports whether id is the id of any of the named steps. Unknown
// ids and unknown names never match.
func IsOneOf(id Id, names ...string) bool {
	if !id.Known() {
		return false
	}
	for _, name := range names {
		if named, ok := byName[name]; ok && named == id {
			return true
		}
	}
	return false
}

func Lookup(id Id) (Step, bool) {
	name, ok := byId[id]
	if !ok {
		return Step{}, false
	}
	return Step{Name: name, Id: id}, true
}

// All returns the known steps ordered by id.
func All() []Step {
	out := make([]Step, len(known))
	copy(out, known)
	sort.Slice(out, func(i, j int) bool {
		return out[i].Id < out[j].Id
	})
	return out
}

func (id Id) Known() bool {
	_, ok := byId[id]
	return ok
}

func (id Id) Name() string {
	return byId[id]
}

func (id Id) String() string {
	if name, ok := byId[id]; ok {
		return name
	}
	if id == None {
		return "none"
	}
	return "unknown(" + strconv.Itoa(int(id)) + ")"
}
