package domain

import (
	"fmt"
	"strings"
)

type Seniority string

const (
	SeniorityIntern    Seniority = "intern"
	SeniorityTrainee   Seniority = "trainee"
	SeniorityJunior    Seniority = "junior"
	SeniorityMid       Seniority = "mid"
	SenioritySenior    Seniority = "senior"
	SeniorityStaff     Seniority = "staff"
	SeniorityLead      Seniority = "lead"
	SeniorityPrincipal Seniority = "principal"
	SeniorityManager   Seniority = "manager"
)

// Seniorities is ordered low to high precedence.
var Seniorities = []Seniority{
	SeniorityIntern,
	SeniorityTrainee,
	SeniorityJunior,
	SeniorityMid,
	SenioritySenior,
	SeniorityStaff,
	SeniorityLead,
	SeniorityPrincipal,
	SeniorityManager,
}

func ParseSeniority(s string) (Seniority, error) {
	v := Seniority(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Seniorities {
		if v == known {
			return v, nil
		}
	}
	return "", fmt.Errorf("unknown seniority %q", s)
}

type Area string

const (
	AreaBackend   Area = "backend"
	AreaFrontend  Area = "frontend"
	AreaFullstack Area = "fullstack"
	AreaMobile    Area = "mobile"
	AreaData      Area = "data"
	AreaDevops    Area = "devops"
	AreaQA        Area = "qa"
	AreaSecurity  Area = "security"
)

var Areas = []Area{
	AreaBackend,
	AreaFrontend,
	AreaFullstack,
	AreaMobile,
	AreaData,
	AreaDevops,
	AreaQA,
	AreaSecurity,
}

func ParseArea(s string) (Area, error) {
	v := Area(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Areas {
		if v == known {
			return v, nil
		}
	}
	return "", fmt.Errorf("unknown area %q", s)
}

const (
	WorkModeRemote = "remote"
	WorkModeHybrid = "hybrid"
	WorkModeOnsite = "onsite"
)

// WorkModes is the fixed evaluation order for classification rules.
var WorkModes = []string{WorkModeRemote, WorkModeHybrid, WorkModeOnsite}
