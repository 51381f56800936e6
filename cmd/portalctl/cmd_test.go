package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yukikurage/project-showcase-api/internal/config"
	"github.com/yukikurage/project-showcase-api/internal/logger"
	"github.com/yukikurage/project-showcase-api/internal/models"
	"github.com/yukikurage/project-showcase-api/internal/server"
	"github.com/yukikurage/project-showcase-api/internal/services"
	"github.com/yukikurage/project-showcase-api/internal/testutil"
)

func setup(t *testing.T) (*commandLine, *bytes.Buffer) {
	t.Helper()

	db := testutil.OpenDB(t)
	cfg := &config.Config{
		JWT:   config.JWTConfig{Secret: "cli-test-secret", ExpiresIn: time.Hour},
		Batch: config.BatchConfig{DefaultDepartment: "Information Science and Engineering"},
	}
	out := &bytes.Buffer{}
	log := logger.Nop()
	return newCommandLine(server.NewServices(cfg, db, log), db, log, out), out
}

func mockPassword(t *testing.T, pwd string) {
	t.Helper()
	readPasswordFunc = func(int) ([]byte, error) { return []byte(pwd), nil }
}

func run(cli *commandLine, args ...string) error {
	return cli.run(append([]string{"portalctl"}, args...))
}

func Test_commandLine_usage(t *testing.T) {
	cli, out := setup(t)

	assert.Equal(t, errHelp, run(cli))
	assert.Contains(t, out.String(), "Usage:")
	assert.Equal(t, errHelp, run(cli, "lol"))
	assert.Equal(t, errHelp, run(cli, "create-admin", "-email", "root@x.edu"))
	assert.Equal(t, errHelp, run(cli, "add-student", "-email", "a@x.edu", "-name", "A"))
	assert.Equal(t, errHelp, run(cli, "reset-password"))
}

func Test_commandLine_createAdmin(t *testing.T) {
	cli, out := setup(t)

	mockPassword(t, "")
	assert.Equal(t, errHelp, run(cli, "create-admin", "-email", "root@x.edu", "-name", "Root"))

	mockPassword(t, "s3cret!")
	require.NoError(t, run(cli, "create-admin", "-email", "Root@X.edu", "-name", "Root"))
	assert.Contains(t, out.String(), "admin root@x.edu created")

	result, err := cli.svc.Auth.Login(context.Background(), services.LoginInput{Email: "root@x.edu", Password: "s3cret!"})
	require.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, result.User.Role)

	err = run(cli, "create-admin", "-email", "root@x.edu", "-name", "Root", "-password", "another1")
	assert.ErrorIs(t, err, services.ErrDuplicateEmail)
}

func Test_commandLine_addStudent(t *testing.T) {
	cli, out := setup(t)

	err := run(cli, "add-student", "-email", "alice@x.edu", "-name", "Alice", "-batch-id", "CSE2027")
	assert.ErrorIs(t, err, errNoAdmin)

	testutil.CreateAdmin(t, cli.db, "root@x.edu")

	err = run(cli, "add-student", "-email", "alice@x.edu", "-name", "Alice", "-batch-id", "cse-2027!")
	assert.ErrorIs(t, err, services.ErrMalformedBatch)
	_, err = cli.svc.Batches.Get(context.Background(), "CSE-2027!")
	assert.ErrorIs(t, err, services.ErrBatchNotFound)

	require.NoError(t, run(cli, "add-student", "-email", "alice@x.edu", "-name", "Alice", "-batch-id", "cse2027"))
	assert.Contains(t, out.String(), "student alice@x.edu added to batch CSE2027")

	match := regexp.MustCompile(`temporary password: (\S+)`).FindStringSubmatch(out.String())
	require.Len(t, match, 2)

	result, err := cli.svc.Auth.Login(context.Background(), services.LoginInput{
		Email: "alice@x.edu", Password: match[1], BatchID: "CSE2027",
	})
	require.NoError(t, err)
	assert.Equal(t, "2023-2027", *result.User.Batch)

	batch, err := cli.svc.Batches.Get(context.Background(), "CSE2027")
	require.NoError(t, err)
	assert.Equal(t, 2027, batch.Year)
	assert.Equal(t, 1, batch.TotalStudents)
}

func Test_commandLine_seedBatches(t *testing.T) {
	cli, out := setup(t)

	assert.ErrorIs(t, run(cli, "seed-batches"), errNoAdmin)

	testutil.CreateAdmin(t, cli.db, "root@x.edu")
	require.NoError(t, run(cli, "seed-batches"))
	assert.Contains(t, out.String(), "3 of 3 batches created")

	out.Reset()
	require.NoError(t, run(cli, "seed-batches"))
	assert.Contains(t, out.String(), "ISE202601: already exists, skipped")
	assert.Contains(t, out.String(), "0 of 3 batches created")

	file := filepath.Join(t.TempDir(), "batches.json")
	require.NoError(t, os.WriteFile(file, []byte(`[
		{"batchId": "CSE2028", "batch": "2024-2028", "department": "Computer Science", "year": 2028},
		{"batchId": "ISE202601", "batch": "2022-2026", "department": "ISE", "year": 2026}
	]`), 0o600))

	out.Reset()
	require.NoError(t, run(cli, "seed-batches", "-file", file))
	assert.Contains(t, out.String(), "1 of 2 batches created")

	batches, err := cli.svc.Batches.ListActive(context.Background(), false)
	require.NoError(t, err)
	assert.Len(t, batches, 4)
	assert.Equal(t, "CSE2028", batches[0].BatchID)

	require.NoError(t, os.WriteFile(file, []byte(`{`), 0o600))
	assert.Error(t, run(cli, "seed-batches", "-file", file))
}

func Test_commandLine_resetPassword(t *testing.T) {
	cli, out := setup(t)
	testutil.CreateAdmin(t, cli.db, "root@x.edu")

	mockPassword(t, "")
	assert.Equal(t, errHelp, run(cli, "reset-password", "-email", "root@x.edu"))

	mockPassword(t, "short")
	assert.ErrorIs(t, run(cli, "reset-password", "-email", "root@x.edu"), services.ErrPasswordTooShort)

	mockPassword(t, "brand-new-pwd")
	assert.ErrorIs(t, run(cli, "reset-password", "-email", "ghost@x.edu"), services.ErrUserNotFound)

	require.NoError(t, run(cli, "reset-password", "-email", "root@x.edu"))
	assert.Contains(t, out.String(), "password of root@x.edu reset")

	_, err := cli.svc.Auth.Login(context.Background(), services.LoginInput{Email: "root@x.edu", Password: "brand-new-pwd"})
	assert.NoError(t, err)
}

func Test_commandLine_migrate(t *testing.T) {
	cli, out := setup(t)

	require.NoError(t, run(cli, "migrate"))
	require.NoError(t, run(cli, "migrate"))
	assert.Contains(t, out.String(), "database migrated")
	assert.True(t, cli.db.Migrator().HasIndex(&models.Project{}, "idx_projects_approved_created"))
}
