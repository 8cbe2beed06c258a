package remote

import "encoding/json"

// Formas de error que devuelve el backend en 4xx:
//
//	{"detail": "texto"}
//	{"detail": [{"msg": "issue 1"}, {"msg": "issue 2"}]}
//	{"message": "texto"}
//
// backendDetail extrae el mensaje más específico disponible para mostrarlo
// tal cual al usuario; si el cuerpo no trae ninguno, devuelve "".
func backendDetail(body []byte) string {
	var envelope struct {
		Detail  json.RawMessage `json:"detail"`
		Message string          `json:"message"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		return ""
	}

	if len(envelope.Detail) > 0 {
		var asString string
		if err := json.Unmarshal(envelope.Detail, &asString); err == nil && asString != "" {
			return asString
		}

		var asIssues []struct {
			Msg string `json:"msg"`
		}
		if err := json.Unmarshal(envelope.Detail, &asIssues); err == nil {
			for _, issue := range asIssues {
				if issue.Msg != "" {
					return issue.Msg
				}
			}
		}
	}

	return envelope.Message
}
