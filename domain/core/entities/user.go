package entities

// User is a registered shop customer. UserID is immutable after creation;
// only the display name may change.
type User struct {
	PK     string `json:"-" dynamodbav:"pk"`
	SK     string `json:"-" dynamodbav:"sk"`
	UserID string `json:"userId" dynamodbav:"userId"`
	Name   string `json:"name" dynamodbav:"name"`
}
