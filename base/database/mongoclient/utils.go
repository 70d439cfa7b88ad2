package mongoclient

import (
	"reflect"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsoncodec"
)

// MakeBsonM flattens a patch struct into the bson.M for a $set or a
// find filter. Zero valued fields stay out, so only what the caller
// filled in lands in the query. Pointer fields are dereferenced,
// which lets a patch distinguish unset (nil) from set-to-zero-value.
func MakeBsonM(patchable interface{}) (bson.M, error) {
	val := reflect.ValueOf(patchable)
	if val.Kind() == reflect.Ptr && val.Elem().Kind() == reflect.Struct {
		val = val.Elem()
	}

	m := bson.M{}
	for i := 0; i < val.NumField(); i++ {
		field := val.Field(i)

		tag, err := bsoncodec.DefaultStructTagParser(val.Type().Field(i))
		if err != nil {
			return nil, err
		}
		if tag.Skip || !field.CanInterface() {
			continue
		}

		if field.Kind() == reflect.Ptr {
			if field.IsNil() {
				continue
			}
			m[tag.Name] = field.Elem().Interface()
			continue
		}

		if field.IsZero() {
			continue
		}
		m[tag.Name] = field.Interface()
	}
	return m, nil
}
