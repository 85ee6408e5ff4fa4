package errors

import (
	"encoding/json"
	"fmt"
)

// ListCustomersHint is attached to every customer related failure
const ListCustomersHint = "Consider calling GET /customers to receive a list of all available customers"

// ErrorResponse is transport representation of business error
type ErrorResponse struct {
	Reason string `json:"reason" msgpack:"reason"`
	Hint   string `json:"hint" msgpack:"hint"`
}

// EntryNotFoundErr is raised when requested entry is absent
type EntryNotFoundErr struct {
	message string
}

func (e *EntryNotFoundErr) Error() string {
	return e.message
}

// MarshalJSON renders error as ErrorResponse
func (e *EntryNotFoundErr) MarshalJSON() ([]byte, error) {
	return json.Marshal(&ErrorResponse{Reason: e.message, Hint: ListCustomersHint})
}

// NewEntryNotFoundErr builds EntryNotFoundErr with provided message
func NewEntryNotFoundErr(msg string) *EntryNotFoundErr {
	return &EntryNotFoundErr{message: msg}
}

// NewCustomerNotFoundErr builds EntryNotFoundErr for customer with provided name
func NewCustomerNotFoundErr(name string) *EntryNotFoundErr {
	return NewEntryNotFoundErr(fmt.Sprintf("A customer with name %s does not exist", name))
}

// EntryExistsErr is raised when entry with the same key is already present
type EntryExistsErr struct {
	message string
}

func (e *EntryExistsErr) Error() string {
	return e.message
}

// MarshalJSON renders error as ErrorResponse
func (e *EntryExistsErr) MarshalJSON() ([]byte, error) {
	return json.Marshal(&ErrorResponse{Reason: e.message, Hint: ListCustomersHint})
}

// NewEntryExistsErr builds EntryExistsErr with provided message
func NewEntryExistsErr(msg string) *EntryExistsErr {
	return &EntryExistsErr{message: msg}
}

// NewCustomerExistsErr builds EntryExistsErr for customer with provided name
func NewCustomerExistsErr(name string) *EntryExistsErr {
	return NewEntryExistsErr(fmt.Sprintf("A customer with name %s already exists", name))
}
