package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nandaardian19/studentprofile/internal/app/models/dto"
)

const payload = `
firstName: Nanda
lastName: Ardian
gender: male
studentIdentifierNumber: "2020104001"
programStudy: Informatics
faculty: Engineering
enrollmentYear: 2020
email: nanda@uni.ac.id
password: Abcdefg1@
userName: nanda
`

func writeConfig(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("profile:\n  current_year: 2024\nexport:\n  bcrypt_cost: 4\n"), 0o600))
	return path
}

func runCLI(t *testing.T, stdin string, args ...string) (int, string, string) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	args = append([]string{"-config", writeConfig(t), "-env", ""}, args...)
	code := run(args, strings.NewReader(stdin), &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func TestRunUpdate(t *testing.T) {
	code, out, _ := runCLI(t, payload)
	require.Equal(t, 0, code)

	var resp dto.UpdateProfileResponse
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "2020104001", resp.User.StudentIdentifierNumber)
	assert.Equal(t, 4, resp.Status.YearsEnrolled)
	assert.NotContains(t, out, "Abcdefg1@")
}

func TestRunUpdateFromFile(t *testing.T) {
	input := filepath.Join(t.TempDir(), "profile.yaml")
	require.NoError(t, os.WriteFile(input, []byte(payload), 0o600))

	code, out, _ := runCLI(t, "", "-input", input)
	require.Equal(t, 0, code)
	assert.Contains(t, out, `"success": true`)
}

func TestRunUpdateRejected(t *testing.T) {
	bad := strings.Replace(payload, `"2020104001"`, `"12345"`, 1)
	code, out, logs := runCLI(t, bad)
	assert.Equal(t, 1, code)

	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.False(t, resp.Success)
	assert.Equal(t, dto.ErrorCodeInvalidStudentID, resp.Error.Code)
	assert.Equal(t, "studentIdentifierNumber", resp.Error.Field)
	assert.Contains(t, logs, "Student identifier number should be exactly 10 digits.")
}

func TestRunCheck(t *testing.T) {
	code, out, _ := runCLI(t, "firstName: Nanda\n", "-check")
	assert.Equal(t, 1, code)

	var resp dto.CheckProfileResponse
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.False(t, resp.Valid)
	assert.NotEmpty(t, resp.Errors)

	code, _, _ = runCLI(t, payload, "-check")
	assert.Equal(t, 0, code)
}

func TestRunBadPayload(t *testing.T) {
	code, out, _ := runCLI(t, "")
	assert.Equal(t, 1, code)
	assert.Contains(t, out, string(dto.ErrorCodeBadRequest))
}

func TestRunBadFlag(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run([]string{"-nope"}, strings.NewReader(""), &stdout, &stderr)
	assert.Equal(t, 2, code)
}
