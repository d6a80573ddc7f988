package enums

import "fmt"

// Property describes enum with known devices' properties.
type Property int

const (
	// PropPicture describes camera's current picture.
	PropPicture Property = iota
	// PropPictureURL describes reference of camera's current picture.
	PropPictureURL
)

var propertyNames = map[Property]string{
	PropPicture:    "picture",
	PropPictureURL: "picture_url",
}

// AllowedProperties contains set of all possible allowed properties per device type.
var AllowedProperties = map[DeviceType][]Property{
	DevCamera: {PropPicture, PropPictureURL},
}

// String returns snake-cased property name.
func (i Property) String() string {
	name, ok := propertyNames[i]
	if !ok {
		return fmt.Sprintf("Property(%d)", i)
	}

	return name
}

// PropertyString parses property from its name.
func PropertyString(s string) (Property, error) {
	for k, v := range propertyNames {
		if v == s {
			return k, nil
		}
	}

	return 0, fmt.Errorf("%s does not belong to Property values", s)
}

// SliceContainsProperty checks whether slice contains required property.
func SliceContainsProperty(s []Property, p Property) bool {
	for _, v := range s {
		if v == p {
			return true
		}
	}

	return false
}
