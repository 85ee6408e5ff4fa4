package rpc

import (
	"fmt"
	"math"

	"github.com/umalmyha/customer-registry/internal/model"
	"google.golang.org/protobuf/types/known/structpb"
)

const (
	nameField        = "name"
	mailAddressField = "mailAddress"
	categoryField    = "category"
)

// CustomerToStruct encodes customer using the same keys as json representation
func CustomerToStruct(c model.Customer) *structpb.Struct {
	return &structpb.Struct{
		Fields: map[string]*structpb.Value{
			nameField:        structpb.NewStringValue(c.Name),
			mailAddressField: structpb.NewStringValue(c.MailAddress),
			categoryField:    structpb.NewNumberValue(float64(c.Category)),
		},
	}
}

// CustomersToList encodes customers keeping their order
func CustomersToList(customers []model.Customer) *structpb.ListValue {
	values := make([]*structpb.Value, 0, len(customers))
	for _, c := range customers {
		values = append(values, structpb.NewStructValue(CustomerToStruct(c)))
	}
	return &structpb.ListValue{Values: values}
}

// StructToCustomer decodes customer, missing fields are left zero
func StructToCustomer(s *structpb.Struct) (model.Customer, error) {
	var c model.Customer
	fields := s.GetFields()

	if v, ok := fields[nameField]; ok {
		name, ok := v.GetKind().(*structpb.Value_StringValue)
		if !ok {
			return c, fmt.Errorf("field %s must be a string", nameField)
		}
		c.Name = name.StringValue
	}

	if v, ok := fields[mailAddressField]; ok {
		mail, ok := v.GetKind().(*structpb.Value_StringValue)
		if !ok {
			return c, fmt.Errorf("field %s must be a string", mailAddressField)
		}
		c.MailAddress = mail.StringValue
	}

	if v, ok := fields[categoryField]; ok {
		num, ok := v.GetKind().(*structpb.Value_NumberValue)
		if !ok || num.NumberValue != math.Trunc(num.NumberValue) {
			return c, fmt.Errorf("field %s must be an integer", categoryField)
		}
		c.Category = model.Category(num.NumberValue)
	}

	return c, nil
}

// ListToCustomers decodes list of customer structs
func ListToCustomers(l *structpb.ListValue) ([]model.Customer, error) {
	customers := make([]model.Customer, 0, len(l.GetValues()))
	for i, v := range l.GetValues() {
		s, ok := v.GetKind().(*structpb.Value_StructValue)
		if !ok {
			return nil, fmt.Errorf("element %d must be a struct", i)
		}

		c, err := StructToCustomer(s.StructValue)
		if err != nil {
			return nil, fmt.Errorf("element %d is invalid - %w", i, err)
		}
		customers = append(customers, c)
	}
	return customers, nil
}
