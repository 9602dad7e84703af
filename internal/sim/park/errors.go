package park

import "fmt"

func errMissingField(name string) error {
	return fmt.Errorf("command missing %q", name)
}

func errUnknownCommand(cmd string) error {
	return fmt.Errorf("unknown command %q", cmd)
}

func errUnknownTool(kind string) error {
	return fmt.Errorf("unknown tool kind %q", kind)
}

func errUnknownBuilding(name string) error {
	return fmt.Errorf("unknown building %q", name)
}
