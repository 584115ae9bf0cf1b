package validateorganization

import "emis-workers/internal/emis/intake"

type Input struct {
	UserInfo intake.UserInfo `json:"userInfo"`
}

type Output struct {
	UserInfo  intake.UserInfo `json:"userInfo"`
	Valid     bool            `json:"valid"`
	Attendees string          `json:"attendees"`
}
