package registry

import (
	"fmt"

	"github.com/thomas-vilte/commit-template/internal/i18n"
	"github.com/urfave/cli/v3"
)

type CommandFactory interface {
	CreateCommand(t *i18n.Translations) *cli.Command
}

// Registry keeps command factories in registration order.
type Registry struct {
	factories map[string]CommandFactory
	order     []string
	t         *i18n.Translations
}

func NewRegistry(t *i18n.Translations) *Registry {
	return &Registry{
		factories: make(map[string]CommandFactory),
		t:         t,
	}
}

func (r *Registry) Register(name string, factory CommandFactory) error {
	if _, exists := r.factories[name]; exists {
		return fmt.Errorf("%s", r.t.GetMessage("app.factory_already_registered", 0, map[string]interface{}{
			"FactoryName": name,
		}))
	}
	r.factories[name] = factory
	r.order = append(r.order, name)
	return nil
}

func (r *Registry) CreateCommands() []*cli.Command {
	commands := make([]*cli.Command, 0, len(r.factories))
	for _, name := range r.order {
		commands = append(commands, r.factories[name].CreateCommand(r.t))
	}
	return commands
}
