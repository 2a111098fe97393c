package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseLeadsCSVRejectsRowMissingRequiredField(t *testing.T) {
	batch := parseLeadsCSV("firstName,lastName,email\nJane,Doe,jane@x.com\n,Smith,bad@x.com\n")

	assert.Equal(t, 2, batch.totalRows)
	assert.Len(t, batch.valid, 1)
	assert.Empty(t, batch.parseErrs)
	assert.Equal(t, "Jane", batch.valid[0].FirstName)
	assert.Equal(t, "Doe", batch.valid[0].LastName)
	assert.Equal(t, "jane@x.com", batch.valid[0].Email)
}

func TestParseLeadsCSVMatchesColumnsByName(t *testing.T) {
	batch := parseLeadsCSV("email,lastName,firstName\njane@x.com,Doe,Jane\n")

	assert.Len(t, batch.valid, 1)
	assert.Equal(t, "Jane", batch.valid[0].FirstName)
	assert.Equal(t, "Doe", batch.valid[0].LastName)
	assert.Equal(t, "jane@x.com", batch.valid[0].Email)
}

func TestParseLeadsCSVIsWhitespaceTolerant(t *testing.T) {
	batch := parseLeadsCSV(" firstName , lastName , email \n Jane , Doe , jane@x.com \n")

	assert.Len(t, batch.valid, 1)
	assert.Equal(t, "Jane", batch.valid[0].FirstName)
	assert.Equal(t, "jane@x.com", batch.valid[0].Email)
}

func TestParseLeadsCSVStripsByteOrderMarkFromHeader(t *testing.T) {
	batch := parseLeadsCSV("\uFEFFfirstName,lastName,email\nJane,Doe,jane@x.com\n")

	assert.Len(t, batch.valid, 1)
	assert.Equal(t, "Jane", batch.valid[0].FirstName)
	assert.Equal(t, "jane@x.com", batch.valid[0].Email)
}

func TestParseLeadsCSVCapturesOptionalColumns(t *testing.T) {
	batch := parseLeadsCSV(
		"firstName,lastName,email,countryCode,jobTitle,companyName\n" +
			"Jane,Doe,jane@x.com,US,Engineer,Acme\n",
	)

	assert.Len(t, batch.valid, 1)
	assert.Equal(t, "US", batch.valid[0].CountryCode)
	assert.Equal(t, "Engineer", batch.valid[0].JobTitle)
	assert.Equal(t, "Acme", batch.valid[0].CompanyName)
}

func TestParseLeadsCSVIgnoresGenderAndMessageColumns(t *testing.T) {
	batch := parseLeadsCSV("firstName,lastName,email,gender,message\nJane,Doe,jane@x.com,male,hi\n")

	assert.Len(t, batch.valid, 1)
	assert.Empty(t, batch.valid[0].Gender)
	assert.Empty(t, batch.valid[0].Message)
}

func TestParseLeadsCSVColumnCountMismatchIsParseError(t *testing.T) {
	batch := parseLeadsCSV("firstName,lastName,email\nJane,Doe,jane@x.com,extra\nJohn,Smith,john@x.com\n")

	assert.Equal(t, 2, batch.totalRows)
	assert.Len(t, batch.valid, 1)
	assert.Len(t, batch.parseErrs, 1)
	assert.Equal(t, 1, batch.parseErrs[0].Row)
	assert.NotEmpty(t, batch.parseErrs[0].Message)
	assert.Equal(t, "John", batch.valid[0].FirstName)
}

func TestParseLeadsCSVMalformedQuotingNeverPanics(t *testing.T) {
	batch := parseLeadsCSV("firstName,lastName,email\nJa\"ne,Doe,jane@x.com\nJohn,Smith,john@x.com\n")

	assert.Len(t, batch.parseErrs, 1)
	assert.Equal(t, 1, batch.parseErrs[0].Row)
	assert.Len(t, batch.valid, 1)
	assert.Equal(t, "John", batch.valid[0].FirstName)
}

func TestParseLeadsCSVEmptyInput(t *testing.T) {
	batch := parseLeadsCSV("")

	assert.Equal(t, 0, batch.totalRows)
	assert.Empty(t, batch.valid)
	assert.Empty(t, batch.parseErrs)
}

func TestParseLeadsCSVHeaderOnly(t *testing.T) {
	batch := parseLeadsCSV("firstName,lastName,email\n")

	assert.Equal(t, 0, batch.totalRows)
	assert.Empty(t, batch.valid)
}

func TestParseLeadsCSVMissingRequiredColumnRejectsEverything(t *testing.T) {
	batch := parseLeadsCSV("firstName,lastName\nJane,Doe\n")

	assert.Equal(t, 1, batch.totalRows)
	assert.Empty(t, batch.valid)
	assert.Empty(t, batch.parseErrs)
}

// successCount + errorCount == totalInputRows, for any mix of rejection reasons.
func TestParseLeadsCSVCountsAlwaysAddUp(t *testing.T) {
	inputs := []string{
		"firstName,lastName,email\nJane,Doe,jane@x.com\n,Smith,bad@x.com\n",
		"firstName,lastName,email\nJane,Doe,jane@x.com,extra\n",
		"firstName,lastName,email\nJa\"ne,Doe,a@x.com\nJohn,Smith,b@x.com\n,,\n",
		"",
	}

	for _, input := range inputs {
		batch := parseLeadsCSV(input)
		errorCount := batch.totalRows - len(batch.valid)
		assert.GreaterOrEqual(t, errorCount, 0)
		assert.Equal(t, batch.totalRows, len(batch.valid)+errorCount)
	}
}
