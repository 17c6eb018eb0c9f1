// cmd/legaldoc/cmd_activities.go
package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"legal-workers/pkg/registry"

	alq "legal-workers/internal/workers/ai-conversation/ask-legal-question"
	dd "legal-workers/internal/workers/documents/deliver-document"
	gd "legal-workers/internal/workers/documents/generate-document"
	sd "legal-workers/internal/workers/documents/search-documents"
	sr "legal-workers/internal/workers/documents/suggest-references"
	cd "legal-workers/internal/workers/timeline/calculate-deadlines"
)

var registryPath string

var activitiesCmd = &cobra.Command{
	Use:   "activities",
	Short: "Maintain the activity registry of the BPMN workers",
}

var activitiesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List registered activities",
	Args:  cobra.NoArgs,
	RunE:  runActivitiesList,
}

var activitiesSyncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Write the built-in legal workers into the registry",
	Args:  cobra.NoArgs,
	RunE:  runActivitiesSync,
}

var activitiesUpdateCmd = &cobra.Command{
	Use:   "update [id] [field] [value]",
	Short: "Update one field of an activity",
	Args:  cobra.ExactArgs(3),
	RunE:  runActivitiesUpdate,
}

var activitiesValidateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate the registry file",
	Args:  cobra.NoArgs,
	RunE:  runActivitiesValidate,
}

func init() {
	activitiesCmd.PersistentFlags().StringVar(&registryPath, "path", "configs/activity-registry.json", "Path to registry file")

	activitiesCmd.AddCommand(activitiesListCmd)
	activitiesCmd.AddCommand(activitiesSyncCmd)
	activitiesCmd.AddCommand(activitiesUpdateCmd)
	activitiesCmd.AddCommand(activitiesValidateCmd)
}

func activityID(taskType string) string {
	return taskType[strings.LastIndex(taskType, ".")+1:]
}

func objectSchema(required []string, props map[string]string) map[string]interface{} {
	properties := make(map[string]interface{}, len(props))
	for name, typ := range props {
		properties[name] = map[string]interface{}{"type": typ}
	}
	req := make([]interface{}, len(required))
	for i, r := range required {
		req[i] = r
	}
	return map[string]interface{}{"type": "object", "required": req, "properties": properties}
}

// builtinActivities describes the workers started by the worker manager.
func builtinActivities() []registry.Activity {
	activity := func(taskType, name, desc, category, timeout string, retries int, errorCodes ...string) registry.Activity {
		return registry.Activity{
			ID:                   activityID(taskType),
			DisplayName:          name,
			Description:          desc,
			Category:             category,
			Version:              "1.0.0",
			TaskType:             taskType,
			ImplementationStatus: registry.StatusCompleted,
			InputSchema:          map[string]interface{}{},
			OutputSchema:         map[string]interface{}{},
			ErrorCodes:           append([]string{"INPUT_PARSING_FAILED"}, errorCodes...),
			Timeout:              timeout,
			Retries:              retries,
			Workflows:            []string{"legal-document-request"},
			Tags:                 []string{"legal"},
		}
	}

	suggest := activity(sr.TaskType, "Suggest References",
		"Suggests Cameroonian legal citations for a case description", "documents", "5s", 0)
	suggest.InputSchema = objectSchema(nil, map[string]string{"description": "string", "language": "string"})
	suggest.OutputSchema = objectSchema([]string{"citations"}, map[string]string{"citations": "array", "suggestions": "array"})

	generate := activity(gd.TaskType, "Generate Document",
		"Renders a complaint, will or contract and archives the HTML and PDF files", "documents", "30s", 3,
		"DOCUMENT_TYPE_UNKNOWN", "FIELDSET_VALIDATION_FAILED", "PROJECTION_FAILED",
		"ARTIFACT_SAVE_FAILED", "HISTORY_WRITE_FAILED", "ARCHIVE_INDEX_FAILED")
	generate.InputSchema = objectSchema([]string{"documentType", "fields"},
		map[string]string{"documentType": "string", "fields": "object", "language": "string", "signature": "string", "formats": "array"})
	generate.OutputSchema = objectSchema([]string{"documentId"},
		map[string]string{"documentId": "string", "citations": "array", "artifacts": "array", "preview": "string"})

	deliver := activity(dd.TaskType, "Deliver Document",
		"Emails the generated files or sends an SMS notice", "notification", "20s", 3,
		"INPUT_VALIDATION_FAILED", "ARTIFACT_NOT_FOUND", "DELIVERY_FAILED")
	deliver.InputSchema = dd.GetInputSchema()
	deliver.OutputSchema = objectSchema([]string{"delivered"}, map[string]string{"delivered": "boolean", "messageId": "string"})

	search := activity(sd.TaskType, "Search Documents",
		"Full-text search over archived documents", "documents", "10s", 2,
		"DOCUMENT_TYPE_UNKNOWN", "SEARCH_QUERY_FAILED", "SEARCH_TIMEOUT")
	search.InputSchema = objectSchema(nil, map[string]string{"query": "string", "documentType": "string", "language": "string"})
	search.OutputSchema = objectSchema([]string{"documents"}, map[string]string{"documents": "array", "totalHits": "integer"})

	askQ := activity(alq.TaskType, "Ask Legal Question",
		"Answers a legal question through the Q&A backend with a Redis cache", "ai-conversation", "60s", 2,
		"INPUT_VALIDATION_FAILED", "ASK_BACKEND_UNAVAILABLE")
	askQ.InputSchema = alq.GetInputSchema()
	askQ.OutputSchema = objectSchema([]string{"answer"}, map[string]string{"answer": "string", "source": "string", "fallback": "boolean"})

	deadlines := activity(cd.TaskType, "Calculate Deadlines",
		"Computes the dated deadlines of a case", "timeline", "5s", 0, "TIMELINE_INVALID")
	deadlines.InputSchema = objectSchema([]string{"startDate"}, map[string]string{"caseType": "string", "startDate": "string", "deadlines": "array"})
	deadlines.OutputSchema = objectSchema([]string{"events"}, map[string]string{"events": "array", "nextDeadline": "object"})

	return []registry.Activity{suggest, generate, deliver, search, askQ, deadlines}
}

func runActivitiesList(cmd *cobra.Command, args []string) error {
	reg, err := registry.LoadRegistry(registryPath)
	if err != nil {
		return fmt.Errorf("failed to load registry: %w", err)
	}
	out := cmd.OutOrStdout()
	for _, a := range reg.Activities {
		fmt.Fprintf(out, "%-22s %-28s %-12s %s\n", a.ID, a.TaskType, a.ImplementationStatus, a.DisplayName)
	}
	return nil
}

func runActivitiesSync(cmd *cobra.Command, args []string) error {
	reg, err := registry.LoadOrCreate(registryPath)
	if err != nil {
		return err
	}
	for _, a := range builtinActivities() {
		reg.Upsert(a)
	}
	if err := reg.Validate(); err != nil {
		return err
	}
	if err := reg.Save(registryPath); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Registry %s holds %d activities.\n", registryPath, len(reg.Activities))
	return nil
}

func runActivitiesUpdate(cmd *cobra.Command, args []string) error {
	reg, err := registry.LoadRegistry(registryPath)
	if err != nil {
		return fmt.Errorf("failed to load registry: %w", err)
	}
	if err := reg.Update(args[0], args[1], args[2]); err != nil {
		return err
	}
	if err := reg.Save(registryPath); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Updated activity %s, field %s to %s\n", args[0], args[1], args[2])
	return nil
}

func runActivitiesValidate(cmd *cobra.Command, args []string) error {
	reg, err := registry.LoadRegistry(registryPath)
	if err != nil {
		return fmt.Errorf("failed to load registry: %w", err)
	}
	if err := reg.Validate(); err != nil {
		return fmt.Errorf("registry validation failed:\n%w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Registry validation passed. Found %d activities.\n", len(reg.Activities))
	return nil
}
