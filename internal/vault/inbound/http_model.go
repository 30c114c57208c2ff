package inbound

import (
	"encoding/json"
	"strconv"

	"github.com/Codewith-Raja/securevault/internal/pkg/goerror"
)

// ID64 accepts an identifier sent either as a JSON string or a JSON number.
type ID64 int64

func (i *ID64) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch t := v.(type) {
	case nil:
		*i = 0
	case string:
		n, err := strconv.ParseInt(t, 10, 64)
		if err != nil {
			return goerror.NewInvalidFormat("id must be an integer")
		}
		*i = ID64(n)
	case float64:
		*i = ID64(int64(t))
	default:
		return goerror.NewInvalidFormat("id must be a string or number")
	}

	return nil
}

type SaveRequest struct {
	UserID   ID64   `json:"userId"`
	Website  string `json:"website"`
	Username string `json:"username"`
	Password string `json:"password"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type CredentialResponse struct {
	ID       int64  `json:"id,string"`
	UserID   int64  `json:"userId,string"`
	Website  string `json:"website"`
	Username string `json:"username"`
	Password string `json:"password"`
}
