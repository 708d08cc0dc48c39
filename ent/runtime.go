// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/qaforge/qaforge/ent/checkpoint"
	"github.com/qaforge/qaforge/ent/coverageanalysis"
	"github.com/qaforge/qaforge/ent/event"
	"github.com/qaforge/qaforge/ent/generationmetric"
	"github.com/qaforge/qaforge/ent/request"
	"github.com/qaforge/qaforge/ent/schema"
	"github.com/qaforge/qaforge/ent/securityauditlog"
	"github.com/qaforge/qaforge/ent/testcase"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	checkpointFields := schema.Checkpoint{}.Fields()
	_ = checkpointFields
	// checkpointDescUpdatedAt is the schema descriptor for updated_at field.
	checkpointDescUpdatedAt := checkpointFields[4].Descriptor()
	// checkpoint.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	checkpoint.DefaultUpdatedAt = checkpointDescUpdatedAt.Default.(func() time.Time)
	// checkpoint.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	checkpoint.UpdateDefaultUpdatedAt = checkpointDescUpdatedAt.UpdateDefault.(func() time.Time)
	coverageanalysisFields := schema.CoverageAnalysis{}.Fields()
	_ = coverageanalysisFields
	// coverageanalysisDescCovered is the schema descriptor for covered field.
	coverageanalysisDescCovered := coverageanalysisFields[3].Descriptor()
	// coverageanalysis.DefaultCovered holds the default value on creation for the covered field.
	coverageanalysis.DefaultCovered = coverageanalysisDescCovered.Default.(bool)
	// coverageanalysisDescCreatedAt is the schema descriptor for created_at field.
	coverageanalysisDescCreatedAt := coverageanalysisFields[6].Descriptor()
	// coverageanalysis.DefaultCreatedAt holds the default value on creation for the created_at field.
	coverageanalysis.DefaultCreatedAt = coverageanalysisDescCreatedAt.Default.(func() time.Time)
	eventFields := schema.Event{}.Fields()
	_ = eventFields
	// eventDescCreatedAt is the schema descriptor for created_at field.
	eventDescCreatedAt := eventFields[4].Descriptor()
	// event.DefaultCreatedAt holds the default value on creation for the created_at field.
	event.DefaultCreatedAt = eventDescCreatedAt.Default.(func() time.Time)
	generationmetricFields := schema.GenerationMetric{}.Fields()
	_ = generationmetricFields
	// generationmetricDescAttempt is the schema descriptor for attempt field.
	generationmetricDescAttempt := generationmetricFields[3].Descriptor()
	// generationmetric.DefaultAttempt holds the default value on creation for the attempt field.
	generationmetric.DefaultAttempt = generationmetricDescAttempt.Default.(int)
	// generationmetricDescTokensPrompt is the schema descriptor for tokens_prompt field.
	generationmetricDescTokensPrompt := generationmetricFields[6].Descriptor()
	// generationmetric.DefaultTokensPrompt holds the default value on creation for the tokens_prompt field.
	generationmetric.DefaultTokensPrompt = generationmetricDescTokensPrompt.Default.(int)
	// generationmetricDescTokensCompletion is the schema descriptor for tokens_completion field.
	generationmetricDescTokensCompletion := generationmetricFields[7].Descriptor()
	// generationmetric.DefaultTokensCompletion holds the default value on creation for the tokens_completion field.
	generationmetric.DefaultTokensCompletion = generationmetricDescTokensCompletion.Default.(int)
	// generationmetricDescTokensTotal is the schema descriptor for tokens_total field.
	generationmetricDescTokensTotal := generationmetricFields[8].Descriptor()
	// generationmetric.DefaultTokensTotal holds the default value on creation for the tokens_total field.
	generationmetric.DefaultTokensTotal = generationmetricDescTokensTotal.Default.(int)
	// generationmetricDescCreatedAt is the schema descriptor for created_at field.
	generationmetricDescCreatedAt := generationmetricFields[11].Descriptor()
	// generationmetric.DefaultCreatedAt holds the default value on creation for the created_at field.
	generationmetric.DefaultCreatedAt = generationmetricDescCreatedAt.Default.(func() time.Time)
	requestFields := schema.Request{}.Fields()
	_ = requestFields
	// requestDescRequeueCount is the schema descriptor for requeue_count field.
	requestDescRequeueCount := requestFields[14].Descriptor()
	// request.DefaultRequeueCount holds the default value on creation for the requeue_count field.
	request.DefaultRequeueCount = requestDescRequeueCount.Default.(int)
	// requestDescCreatedAt is the schema descriptor for created_at field.
	requestDescCreatedAt := requestFields[15].Descriptor()
	// request.DefaultCreatedAt holds the default value on creation for the created_at field.
	request.DefaultCreatedAt = requestDescCreatedAt.Default.(func() time.Time)
	securityauditlogFields := schema.SecurityAuditLog{}.Fields()
	_ = securityauditlogFields
	// securityauditlogDescTestIndex is the schema descriptor for test_index field.
	securityauditlogDescTestIndex := securityauditlogFields[2].Descriptor()
	// securityauditlog.DefaultTestIndex holds the default value on creation for the test_index field.
	securityauditlog.DefaultTestIndex = securityauditlogDescTestIndex.Default.(int)
	// securityauditlogDescCreatedAt is the schema descriptor for created_at field.
	securityauditlogDescCreatedAt := securityauditlogFields[7].Descriptor()
	// securityauditlog.DefaultCreatedAt holds the default value on creation for the created_at field.
	securityauditlog.DefaultCreatedAt = securityauditlogDescCreatedAt.Default.(func() time.Time)
	testcaseFields := schema.TestCase{}.Fields()
	_ = testcaseFields
	// testcaseDescScore is the schema descriptor for score field.
	testcaseDescScore := testcaseFields[6].Descriptor()
	// testcase.DefaultScore holds the default value on creation for the score field.
	testcase.DefaultScore = testcaseDescScore.Default.(int)
	// testcaseDescValid is the schema descriptor for valid field.
	testcaseDescValid := testcaseFields[7].Descriptor()
	// testcase.DefaultValid holds the default value on creation for the valid field.
	testcase.DefaultValid = testcaseDescValid.Default.(bool)
	// testcaseDescCreatedAt is the schema descriptor for created_at field.
	testcaseDescCreatedAt := testcaseFields[10].Descriptor()
	// testcase.DefaultCreatedAt holds the default value on creation for the created_at field.
	testcase.DefaultCreatedAt = testcaseDescCreatedAt.Default.(func() time.Time)
}
