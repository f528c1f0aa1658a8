// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/existential-birds/amelia-sub003/ent/checkpoint"
	"github.com/existential-birds/amelia-sub003/ent/event"
	"github.com/existential-birds/amelia-sub003/ent/profile"
	"github.com/existential-birds/amelia-sub003/ent/prompt"
	"github.com/existential-birds/amelia-sub003/ent/promptversion"
	"github.com/existential-birds/amelia-sub003/ent/schema"
	"github.com/existential-birds/amelia-sub003/ent/serversetting"
	"github.com/existential-birds/amelia-sub003/ent/tokenusage"
	"github.com/existential-birds/amelia-sub003/ent/workflow"
	"github.com/existential-birds/amelia-sub003/ent/workflowpromptversion"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	checkpointFields := schema.Checkpoint{}.Fields()
	_ = checkpointFields
	// checkpointDescCreatedAt is the schema descriptor for created_at field.
	checkpointDescCreatedAt := checkpointFields[4].Descriptor()
	// checkpoint.DefaultCreatedAt holds the default value on creation for the created_at field.
	checkpoint.DefaultCreatedAt = checkpointDescCreatedAt.Default.(func() time.Time)
	eventFields := schema.Event{}.Fields()
	_ = eventFields
	// eventDescIsError is the schema descriptor for is_error field.
	eventDescIsError := eventFields[12].Descriptor()
	// event.DefaultIsError holds the default value on creation for the is_error field.
	event.DefaultIsError = eventDescIsError.Default.(bool)
	// eventDescCreatedAt is the schema descriptor for created_at field.
	eventDescCreatedAt := eventFields[13].Descriptor()
	// event.DefaultCreatedAt holds the default value on creation for the created_at field.
	event.DefaultCreatedAt = eventDescCreatedAt.Default.(func() time.Time)
	profileFields := schema.Profile{}.Fields()
	_ = profileFields
	// profileDescUpdatedAt is the schema descriptor for updated_at field.
	profileDescUpdatedAt := profileFields[5].Descriptor()
	// profile.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	profile.DefaultUpdatedAt = profileDescUpdatedAt.Default.(func() time.Time)
	// profile.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	profile.UpdateDefaultUpdatedAt = profileDescUpdatedAt.UpdateDefault.(func() time.Time)
	promptFields := schema.Prompt{}.Fields()
	_ = promptFields
	// promptDescCreatedAt is the schema descriptor for created_at field.
	promptDescCreatedAt := promptFields[2].Descriptor()
	// prompt.DefaultCreatedAt holds the default value on creation for the created_at field.
	prompt.DefaultCreatedAt = promptDescCreatedAt.Default.(func() time.Time)
	promptversionFields := schema.PromptVersion{}.Fields()
	_ = promptversionFields
	// promptversionDescCreatedAt is the schema descriptor for created_at field.
	promptversionDescCreatedAt := promptversionFields[4].Descriptor()
	// promptversion.DefaultCreatedAt holds the default value on creation for the created_at field.
	promptversion.DefaultCreatedAt = promptversionDescCreatedAt.Default.(func() time.Time)
	serversettingFields := schema.ServerSetting{}.Fields()
	_ = serversettingFields
	// serversettingDescUpdatedAt is the schema descriptor for updated_at field.
	serversettingDescUpdatedAt := serversettingFields[2].Descriptor()
	// serversetting.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	serversetting.DefaultUpdatedAt = serversettingDescUpdatedAt.Default.(func() time.Time)
	// serversetting.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	serversetting.UpdateDefaultUpdatedAt = serversettingDescUpdatedAt.UpdateDefault.(func() time.Time)
	tokenusageFields := schema.TokenUsage{}.Fields()
	_ = tokenusageFields
	// tokenusageDescInputTokens is the schema descriptor for input_tokens field.
	tokenusageDescInputTokens := tokenusageFields[2].Descriptor()
	// tokenusage.DefaultInputTokens holds the default value on creation for the input_tokens field.
	tokenusage.DefaultInputTokens = tokenusageDescInputTokens.Default.(int)
	// tokenusageDescOutputTokens is the schema descriptor for output_tokens field.
	tokenusageDescOutputTokens := tokenusageFields[3].Descriptor()
	// tokenusage.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	tokenusage.DefaultOutputTokens = tokenusageDescOutputTokens.Default.(int)
	// tokenusageDescTotalTokens is the schema descriptor for total_tokens field.
	tokenusageDescTotalTokens := tokenusageFields[4].Descriptor()
	// tokenusage.DefaultTotalTokens holds the default value on creation for the total_tokens field.
	tokenusage.DefaultTotalTokens = tokenusageDescTotalTokens.Default.(int)
	// tokenusageDescCreatedAt is the schema descriptor for created_at field.
	tokenusageDescCreatedAt := tokenusageFields[5].Descriptor()
	// tokenusage.DefaultCreatedAt holds the default value on creation for the created_at field.
	tokenusage.DefaultCreatedAt = tokenusageDescCreatedAt.Default.(func() time.Time)
	workflowFields := schema.Workflow{}.Fields()
	_ = workflowFields
	// workflowDescCreatedAt is the schema descriptor for created_at field.
	workflowDescCreatedAt := workflowFields[7].Descriptor()
	// workflow.DefaultCreatedAt holds the default value on creation for the created_at field.
	workflow.DefaultCreatedAt = workflowDescCreatedAt.Default.(func() time.Time)
	// workflowDescUpdatedAt is the schema descriptor for updated_at field.
	workflowDescUpdatedAt := workflowFields[10].Descriptor()
	// workflow.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	workflow.DefaultUpdatedAt = workflowDescUpdatedAt.Default.(func() time.Time)
	// workflow.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	workflow.UpdateDefaultUpdatedAt = workflowDescUpdatedAt.UpdateDefault.(func() time.Time)
	// workflowDescReviewIteration is the schema descriptor for review_iteration field.
	workflowDescReviewIteration := workflowFields[14].Descriptor()
	// workflow.DefaultReviewIteration holds the default value on creation for the review_iteration field.
	workflow.DefaultReviewIteration = workflowDescReviewIteration.Default.(int)
	workflowpromptversionFields := schema.WorkflowPromptVersion{}.Fields()
	_ = workflowpromptversionFields
	// workflowpromptversionDescCreatedAt is the schema descriptor for created_at field.
	workflowpromptversionDescCreatedAt := workflowpromptversionFields[2].Descriptor()
	// workflowpromptversion.DefaultCreatedAt holds the default value on creation for the created_at field.
	workflowpromptversion.DefaultCreatedAt = workflowpromptversionDescCreatedAt.Default.(func() time.Time)
}
