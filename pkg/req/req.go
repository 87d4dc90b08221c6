package req

import (
	"encoding/json"
	"io"
)

// Decode читает тело запроса в T. Неизвестные поля считаются ошибкой.
func Decode[T any](body io.ReadCloser) (T, error) {
	var payload T
	defer body.Close()

	dec := json.NewDecoder(body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&payload); err != nil {
		return payload, err
	}
	return payload, nil
}
