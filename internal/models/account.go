package models

// Account is the credential record stored under a username in the account
// table. The username itself is the table key.
type Account struct {
	HashedPassword string `json:"hashed_password"`
}
