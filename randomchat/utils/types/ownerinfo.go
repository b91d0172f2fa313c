// randomchat/utils/types/ownerinfo.go
package types

// OwnerInfoRequest carries the singleton owner record fields. Name1 is the
// bot's display name used for "what is your name" replies.
type OwnerInfoRequest struct {
	Name  string `json:"name"`
	DOB   string `json:"dob"`
	Name1 string `json:"name1"`
}
