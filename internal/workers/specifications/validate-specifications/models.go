package validatespecifications

import "emis-workers/internal/emis/specs"

// Input holds the survey either in the flat flag form (EMISFlags) or as a
// structured survey (EMISSpecs). Flags win when both are present.
type Input struct {
	EMISFlags       map[string]interface{} `json:"emisFlags"`
	EMISSpecs       *specs.Survey          `json:"emisSpecs"`
	RequireComplete bool                   `json:"requireComplete"`
}

type Output struct {
	EMISSpecs         *specs.Survey          `json:"emisSpecs"`
	Outline           []specs.OutlineSection `json:"outline"`
	Complete          bool                   `json:"complete"`
	CompletionPercent int                    `json:"completionPercent"`
}
