package domain

import "encoding/json"

// Optional representa um campo de payload parcial que pode estar presente ou ausente.
// A ausência (chave omitida ou null no JSON) significa "não alterar"; uma string vazia
// é um valor presente e será validada como tal.
type Optional[T any] struct {
	Value T
	Set   bool
}

// Some cria um Optional presente com o valor informado.
func Some[T any](v T) Optional[T] {
	return Optional[T]{Value: v, Set: true}
}

// Get devolve o valor e se ele está presente.
func (o Optional[T]) Get() (T, bool) {
	return o.Value, o.Set
}

// UnmarshalJSON marca o campo como presente sempre que a chave vier com um valor não-nulo.
func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*o = Optional[T]{}
		return nil
	}

	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	o.Value = v
	o.Set = true
	return nil
}

// MarshalJSON serializa campos ausentes como null.
func (o Optional[T]) MarshalJSON() ([]byte, error) {
	if !o.Set {
		return []byte("null"), nil
	}
	return json.Marshal(o.Value)
}
