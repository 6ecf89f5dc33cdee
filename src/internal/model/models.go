package model

import "time"

type Route string

const (
	RouteBaekseok            Route = "BAEKSEOK"
	RouteSamsong             Route = "SAMSONG"
	RouteSamsongWithWonheung Route = "SAMSONG_WITH_WONHEUNG"
)

var Routes = []Route{RouteBaekseok, RouteSamsong, RouteSamsongWithWonheung}

func ParseRoute(s string) (Route, bool) {
	for _, r := range Routes {
		if string(r) == s {
			return r, true
		}
	}
	return "", false
}

type Direction string

const (
	DirectionToSchool   Direction = "TO_SCHOOL"
	DirectionFromSchool Direction = "FROM_SCHOOL"
)

func ParseDirection(s string) (Direction, bool) {
	switch Direction(s) {
	case DirectionToSchool, DirectionFromSchool:
		return Direction(s), true
	}
	return "", false
}

type Trip struct {
	ID            int       `json:"id"`
	Route         Route     `json:"routeName"`
	Direction     Direction `json:"shuttleDirection"`
	DepartureTime string    `json:"departureTime"`
}

type CrowdLevel string

const (
	CrowdEmpty         CrowdLevel = "EMPTY"
	CrowdLight         CrowdLevel = "LIGHT"
	CrowdNormal        CrowdLevel = "NORMAL"
	CrowdLittleCrowded CrowdLevel = "LITTLE_CROWDED"
	CrowdVeryCrowded   CrowdLevel = "VERY_CROWDED"
	CrowdFull          CrowdLevel = "FULL"
)

var CrowdLevels = []CrowdLevel{CrowdEmpty, CrowdLight, CrowdNormal, CrowdLittleCrowded, CrowdVeryCrowded, CrowdFull}

type BoardingStatus string

const (
	BoardingWaiting  BoardingStatus = "WAITING"
	BoardingBoarding BoardingStatus = "BOARDING"
	BoardingDeparted BoardingStatus = "DEPARTED"
)

var BoardingStatuses = []BoardingStatus{BoardingWaiting, BoardingBoarding, BoardingDeparted}

func ValidCrowdLevel(s string) bool {
	for _, c := range CrowdLevels {
		if string(c) == s {
			return true
		}
	}
	return false
}

func ValidBoardingStatus(s string) bool {
	for _, b := range BoardingStatuses {
		if string(b) == s {
			return true
		}
	}
	return false
}

// TripStatus is the latest crowd/boarding report for one trip.
type TripStatus struct {
	TripID         int            `json:"shuttleId"`
	CrowdLevel     CrowdLevel     `json:"crowdLevel"`
	BoardingStatus BoardingStatus `json:"status"`
	ObservedAt     time.Time      `json:"createdAt"`
}

const ArticleTypeTaxi = "TAXI"

type Comment struct {
	ID             int64     `json:"id"`
	AuthorNickname string    `json:"nickname"`
	Content        string    `json:"content"`
	CreatedAt      time.Time `json:"createdAt"`
}

type Article struct {
	ID             int64     `json:"id"`
	Type           string    `json:"type,omitempty"`
	Route          string    `json:"route"`
	Direction      string    `json:"direction"`
	Time           string    `json:"time,omitempty"`
	AuthorNickname string    `json:"nickname,omitempty"`
	Content        string    `json:"content,omitempty"`
	Comments       []Comment `json:"comments,omitempty"`
}

type NewArticle struct {
	Type      string `json:"type"`
	Route     string `json:"route"`
	Direction string `json:"direction"`
	Content   string `json:"content"`
}

type Level string

const (
	LevelBronze   Level = "BRONZE"
	LevelSilver   Level = "SILVER"
	LevelGold     Level = "GOLD"
	LevelPlatinum Level = "PLATINUM"
	LevelDiamond  Level = "DIAMOND"
	LevelMaster   Level = "MASTER"
)

type Profile struct {
	Nickname   string `json:"nickname"`
	IntroText  string `json:"introText"`
	ProfileURL string `json:"profileUrl"`
	Score      int    `json:"score"`
	Level      Level  `json:"level"`
}

type ProfileUpdate struct {
	Nickname  string `json:"nickname"`
	IntroText string `json:"introText"`
}

type SignupRequest struct {
	Nickname   string `json:"nickname"`
	IntroText  string `json:"introText"`
	ProfileURL string `json:"profileUrl,omitempty"`
}

type Preference struct {
	Key       string
	Value     string
	UpdatedAt time.Time
}

type AppError string

func (e AppError) Error() string { return string(e) }

const (
	ErrNotFound        = AppError("NOT_FOUND")
	ErrValidation      = AppError("VALIDATION")
	ErrUnauthenticated = AppError("UNAUTHENTICATED")
)
