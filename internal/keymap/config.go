package keymap

import "fmt"

// ApplyOverrides applies user bindings (context -> key -> action) on top of
// registry. The action "none" unbinds a key.
func ApplyOverrides(registry *Registry, overrides map[string]map[string]string) error {
	for contextName, bindings := range overrides {
		context, ok := ParseContext(contextName)
		if !ok {
			return fmt.Errorf("unknown key context %q", contextName)
		}
		for k, actionStr := range bindings {
			action := Action(actionStr)
			if action == ActionNone {
				registry.Unregister(context, k)
				continue
			}
			if !action.Known() {
				return fmt.Errorf("unknown action %q for key %q in %s", actionStr, k, context)
			}
			registry.Register(context, k, action)
		}
	}
	return nil
}

// Load builds the effective registry from defaults plus overrides and
// validates it. Warnings are returned alongside a usable registry.
func Load(overrides map[string]map[string]string) (*Registry, *ValidationResult, error) {
	registry := Defaults()
	if err := ApplyOverrides(registry, overrides); err != nil {
		return nil, nil, err
	}

	result := NewValidator().Validate(registry)
	if result.HasErrors() {
		return nil, result, fmt.Errorf("invalid key bindings:\n%s", result.String())
	}
	return registry, result, nil
}
