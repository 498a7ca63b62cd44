package domain

import "fmt"

// GetDefaultModel retrieves the default model definition from configuration.
// Returns an error if no default is configured or it is not in the model list.
func (c *Config) GetDefaultModel() (ModelDefinition, error) {
	if c.Preferences.DefaultModel == "" {
		return ModelDefinition{}, fmt.Errorf("no default model configured")
	}

	for _, model := range c.Models {
		if model.Name == c.Preferences.DefaultModel {
			return model, nil
		}
	}

	return ModelDefinition{}, fmt.Errorf("default model %s not found in configuration", c.Preferences.DefaultModel)
}

// FindModelByName searches for a model by its name.
func (c *Config) FindModelByName(name string) (ModelDefinition, bool) {
	for _, model := range c.Models {
		if model.Name == name {
			return model, true
		}
	}
	return ModelDefinition{}, false
}

// HasModel checks if a model with the given name exists in the configuration.
func (c *Config) HasModel(name string) bool {
	_, exists := c.FindModelByName(name)
	return exists
}

// SetDefaultModel changes the default model to the specified name.
// Returns an error if the model doesn't exist.
func (c *Config) SetDefaultModel(name string) error {
	if !c.HasModel(name) {
		return fmt.Errorf("cannot set default model: model %s does not exist", name)
	}

	c.Preferences.DefaultModel = name
	return nil
}

// FindAction resolves an action by ID or case-insensitive name.
func (c *Config) FindAction(ref string) (Action, bool) {
	for _, action := range c.Actions {
		if action.Matches(ref) {
			return action, true
		}
	}
	return Action{}, false
}

// HasAction checks if an action with the given ID exists in the configuration.
func (c *Config) HasAction(id string) bool {
	for _, action := range c.Actions {
		if action.ID == id {
			return true
		}
	}
	return false
}

// AddAction appends a new action to the configuration.
// Returns an error if an action with the same ID already exists.
func (c *Config) AddAction(action Action) error {
	if c.HasAction(action.ID) {
		return fmt.Errorf("action with id %s already exists", action.ID)
	}

	c.Actions = append(c.Actions, action)
	return nil
}

// RemoveAction removes an action from the configuration by ID.
// Returns an error if the action is not found.
func (c *Config) RemoveAction(id string) error {
	indexToRemove := -1
	for i, action := range c.Actions {
		if action.ID == id {
			indexToRemove = i
			break
		}
	}

	if indexToRemove == -1 {
		return fmt.Errorf("action %s not found", id)
	}

	c.Actions = append(c.Actions[:indexToRemove], c.Actions[indexToRemove+1:]...)
	return nil
}

// ModelForAction resolves which model definition an action should use:
// an explicit override wins, then the action's own model, then the default.
func (c *Config) ModelForAction(action Action, override string) (ModelDefinition, error) {
	name := override
	if name == "" {
		name = action.Model
	}
	if name == "" {
		return c.GetDefaultModel()
	}

	model, ok := c.FindModelByName(name)
	if !ok {
		return ModelDefinition{}, fmt.Errorf("model %s not found in configuration", name)
	}
	return model, nil
}

// GetTimeoutSeconds returns the provider request timeout in seconds.
func (c *Config) GetTimeoutSeconds() int {
	if c.Preferences.TimeoutSeconds <= 0 {
		return DefaultRequestTimeoutSeconds
	}
	return c.Preferences.TimeoutSeconds
}

// GetLogBackend returns the configured execution log backend with default fallback.
func (c *Config) GetLogBackend() string {
	switch c.Preferences.LogBackend {
	case LogBackendSQLite:
		return LogBackendSQLite
	default:
		return LogBackendFile
	}
}

// ValidateConsistency checks the internal consistency of the configuration.
// Returns an error if there are inconsistencies (e.g. default model doesn't exist).
func (c *Config) ValidateConsistency() error {
	if c.Preferences.DefaultModel != "" && !c.HasModel(c.Preferences.DefaultModel) {
		return fmt.Errorf("default model %s does not exist in models list", c.Preferences.DefaultModel)
	}

	if c.Preferences.DefaultModel != "" && len(c.Models) == 0 {
		return fmt.Errorf("default model is set but no models are configured")
	}

	seen := make(map[string]bool, len(c.Actions))
	for _, action := range c.Actions {
		if action.ID == "" {
			return fmt.Errorf("action %q has no id", action.Name)
		}
		if seen[action.ID] {
			return fmt.Errorf("duplicate action id %s", action.ID)
		}
		seen[action.ID] = true

		if action.Plugin == "" && action.Prompt == "" {
			return fmt.Errorf("action %s defines neither a prompt nor a plugin", action.ID)
		}
		if action.Model != "" && !c.HasModel(action.Model) {
			return fmt.Errorf("action %s references unknown model %s", action.ID, action.Model)
		}
	}

	return nil
}
