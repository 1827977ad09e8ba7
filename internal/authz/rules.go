package authz

import (
	"strings"

	"bloghub/internal/domain"
)

// MethodMatcher decide se uma regra se aplica ao método HTTP da requisição.
type MethodMatcher func(method string) bool

// AnyMethod casa com qualquer método.
func AnyMethod() MethodMatcher {
	return func(string) bool { return true }
}

// OnlyMethods casa apenas com os métodos listados (sem diferenciar maiúsculas).
func OnlyMethods(methods ...string) MethodMatcher {
	return func(method string) bool {
		return containsFold(methods, method)
	}
}

// AllExcept casa com todos os métodos, menos os listados.
func AllExcept(methods ...string) MethodMatcher {
	return func(method string) bool {
		return !containsFold(methods, method)
	}
}

func containsFold(list []string, s string) bool {
	for _, m := range list {
		if strings.EqualFold(m, s) {
			return true
		}
	}
	return false
}

// Rule exige RequiredRole para as requisições sob PathPrefix cujos métodos casem com Methods.
type Rule struct {
	PathPrefix   string
	RequiredRole domain.Role
	Methods      MethodMatcher
}

// matches compara o prefixo respeitando o limite de segmento:
// "/api/categories" casa com "/api/categories/1" mas não com "/api/categoriesX".
func (r Rule) matches(method, path string) bool {
	prefix := strings.TrimSuffix(r.PathPrefix, "/")
	if path != prefix && !strings.HasPrefix(path, prefix+"/") {
		return false
	}
	if r.Methods == nil {
		return true
	}
	return r.Methods(method)
}

// DefaultRules protege as mutações de categorias: só ADMIN cria, altera ou remove.
func DefaultRules() []Rule {
	return []Rule{
		{PathPrefix: "/api/categories", RequiredRole: domain.RoleAdmin, Methods: AllExcept("GET")},
	}
}
