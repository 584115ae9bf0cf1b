// cmd/tools/registry-updater/main.go
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strconv"
	"time"

	"emis-workers/pkg/registry"
)

const defaultRegistryPath = "pkg/registry/activity-registry.json"

func main() {
	listCmd := flag.NewFlagSet("list", flag.ExitOnError)
	updateCmd := flag.NewFlagSet("update", flag.ExitOnError)
	validateCmd := flag.NewFlagSet("validate", flag.ExitOnError)
	checkCmd := flag.NewFlagSet("check", flag.ExitOnError)

	listPath := listCmd.String("path", defaultRegistryPath, "Path to registry file")

	updatePath := updateCmd.String("path", defaultRegistryPath, "Path to registry file")
	taskType := updateCmd.String("taskType", "", "Task type to update (e.g., generate-report)")
	field := updateCmd.String("field", "", "Field to update (version, description, timeout, retries)")
	value := updateCmd.String("value", "", "New value for the field")

	validatePath := validateCmd.String("path", defaultRegistryPath, "Path to registry file")

	checkPath := checkCmd.String("path", defaultRegistryPath, "Path to registry file")
	checkTask := checkCmd.String("taskType", "", "Task type whose input schema to apply")
	varsFile := checkCmd.String("vars", "", "JSON file holding job variables")

	if len(os.Args) < 2 {
		help()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "list":
		listCmd.Parse(os.Args[2:])
		exitOnError(list(*listPath))

	case "update":
		updateCmd.Parse(os.Args[2:])
		if *taskType == "" || *field == "" || *value == "" {
			fmt.Println("Error: taskType, field, and value are required for update.")
			updateCmd.Usage()
			os.Exit(1)
		}
		exitOnError(update(*updatePath, *taskType, *field, *value))
		fmt.Printf("Updated %s, field %s to %s\n", *taskType, *field, *value)

	case "validate":
		validateCmd.Parse(os.Args[2:])
		reg, err := registry.Load(*validatePath)
		exitOnError(err)
		fmt.Printf("Registry validation passed. Found %d activities.\n", len(reg.Activities))

	case "check":
		checkCmd.Parse(os.Args[2:])
		if *checkTask == "" || *varsFile == "" {
			fmt.Println("Error: taskType and vars are required for check.")
			checkCmd.Usage()
			os.Exit(1)
		}
		exitOnError(check(*checkPath, *checkTask, *varsFile))

	default:
		help()
	}
}

func exitOnError(err error) {
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}

func list(path string) error {
	reg, err := registry.Load(path)
	if err != nil {
		return err
	}
	for _, a := range reg.Activities {
		fmt.Printf("%-26s %-16s %-8s retries=%d  %s\n", a.TaskType, a.Category, a.Timeout, a.Retries, a.DisplayName)
	}
	return nil
}

func update(path, taskType, field, value string) error {
	reg, err := registry.Load(path)
	if err != nil {
		return err
	}

	a, ok := reg.Get(taskType)
	if !ok {
		return fmt.Errorf("task type %s not found", taskType)
	}

	switch field {
	case "version":
		a.Version = value
	case "description":
		a.Description = value
	case "timeout":
		if _, err := time.ParseDuration(value); err != nil {
			return fmt.Errorf("invalid timeout value: %w", err)
		}
		a.Timeout = value
	case "retries":
		retries, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid retries value: %w", err)
		}
		a.Retries = retries
	default:
		return fmt.Errorf("unknown field: %s", field)
	}

	reg.LastUpdated = time.Now().Format(time.RFC3339)
	data, err := json.MarshalIndent(reg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal registry: %w", err)
	}
	return os.WriteFile(path, append(data, '\n'), 0644)
}

// check validates a job variables document the way the worker would before
// executing it.
func check(path, taskType, varsFile string) error {
	reg, err := registry.Load(path)
	if err != nil {
		return err
	}
	schema, err := reg.InputSchema(taskType)
	if err != nil {
		return err
	}
	if schema == nil {
		return fmt.Errorf("task type %s has no input schema", taskType)
	}

	data, err := os.ReadFile(varsFile)
	if err != nil {
		return fmt.Errorf("read variables: %w", err)
	}
	result, err := schema.ValidateJSON(string(data))
	if err != nil {
		return err
	}
	if !result.Valid {
		for _, msg := range result.GetErrorMessages() {
			fmt.Println("  " + msg)
		}
		return fmt.Errorf("%d validation errors", len(result.Errors))
	}
	fmt.Printf("Variables are valid for %s.\n", taskType)
	return nil
}

func help() {
	fmt.Print(`
Usage: registry-updater <command> [flags]

Commands:
  list      List the registered activities
  update    Update a field of an existing activity
  validate  Validate the registry file
  check     Validate job variables against a task type's input schema
  help      Show this help message

Examples:
  registry-updater list
  registry-updater update -taskType generate-report -field timeout -value 45s
  registry-updater validate -path pkg/registry/activity-registry.json
  registry-updater check -taskType record-answer -vars answer.json

Use 'registry-updater <command> -h' for more information about a command.
` + "\n")
}
