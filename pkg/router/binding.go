package router

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"strconv"
	"strings"

	"github.com/mylinked/backend/pkg/xcontext"
)

func bindJSON(r *http.Request, req any) error {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		return err
	}

	if len(body) == 0 {
		return nil
	}

	return json.Unmarshal(body, req)
}

// bindQuery fills req from URL query parameters, matching fields by their
// json tag. Only flat scalar fields are supported; list endpoints take
// offset/limit as integers like everything else.
func bindQuery(r *http.Request, req any) error {
	values := r.URL.Query()
	structValue := reflect.ValueOf(req).Elem()
	structType := structValue.Type()

	for i := 0; i < structType.NumField(); i++ {
		field := structType.Field(i)
		name := jsonName(field)
		if name == "" || !values.Has(name) {
			continue
		}

		if err := setField(structValue.Field(i), values.Get(name)); err != nil {
			return fmt.Errorf("invalid value for %s: %w", name, err)
		}
	}

	return nil
}

// bindSession fills fields tagged `session:"name"` from the browser
// session. A ",delete" suffix consumes the value, which is how one-shot
// values like the OAuth state echo are kept single-use per browser.
func bindSession(ctx context.Context, req any) error {
	structValue := reflect.ValueOf(req).Elem()
	structType := structValue.Type()

	var fields []reflect.StructField
	for i := 0; i < structType.NumField(); i++ {
		if _, ok := structType.Field(i).Tag.Lookup("session"); ok {
			fields = append(fields, structType.Field(i))
		}
	}

	if len(fields) == 0 {
		return nil
	}

	r := xcontext.HTTPRequest(ctx)
	w := xcontext.HTTPWriter(ctx)
	if r == nil || w == nil {
		return errors.New("no http request in context")
	}

	session, err := xcontext.SessionStore(ctx).Get(r)
	if err != nil {
		return err
	}

	needSave := false
	for _, field := range fields {
		tag := field.Tag.Get("session")
		name, modifier, _ := strings.Cut(tag, ",")
		value, ok := session.Values[name]
		if !ok {
			continue
		}

		if s, ok := value.(string); ok {
			if err := setField(structValue.FieldByIndex(field.Index), s); err != nil {
				return err
			}
		}

		if modifier == "delete" {
			delete(session.Values, name)
			needSave = true
		}
	}

	if needSave {
		return xcontext.SessionStore(ctx).Save(r, w, session)
	}

	return nil
}

func jsonName(field reflect.StructField) string {
	tag, ok := field.Tag.Lookup("json")
	if !ok {
		return ""
	}

	name, _, _ := strings.Cut(tag, ",")
	if name == "-" {
		return ""
	}

	return name
}

func setField(v reflect.Value, s string) error {
	switch v.Kind() {
	case reflect.String:
		v.SetString(s)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return err
		}
		v.SetInt(n)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		n, err := strconv.ParseUint(s, 10, 64)
		if err != nil {
			return err
		}
		v.SetUint(n)
	case reflect.Bool:
		b, err := strconv.ParseBool(s)
		if err != nil {
			return err
		}
		v.SetBool(b)
	default:
		return fmt.Errorf("unsupported field kind %s", v.Kind())
	}

	return nil
}
