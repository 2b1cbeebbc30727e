package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dev-mohitbeniwal/employee-management/dao"
	echo_errors "github.com/dev-mohitbeniwal/employee-management/errors"
	"github.com/dev-mohitbeniwal/employee-management/model"
	"github.com/dev-mohitbeniwal/employee-management/security"
	"github.com/dev-mohitbeniwal/employee-management/service"
	"github.com/dev-mohitbeniwal/employee-management/util"
)

func newEmployeeService(t *testing.T) (*service.EmployeeService, *security.IDObfuscator) {
	t.Helper()
	obfuscator := newObfuscator(t)
	svc := service.NewEmployeeService(
		dao.NewMemoryEmployeeDAO(),
		obfuscator,
		util.NewValidationUtil(""),
		util.NewCacheService(),
		util.NewNotificationService(),
		util.NewEventBus(),
		util.NewPhotoStore(t.TempDir()),
	)
	return svc, obfuscator
}

func TestEmployeeService_ListAndGet(t *testing.T) {
	ctx := context.Background()
	svc, obfuscator := newEmployeeService(t)

	employees, err := svc.ListEmployees(ctx)
	require.NoError(t, err)
	require.Len(t, employees, 3)

	for _, e := range employees {
		require.NotEmpty(t, e.EncryptedID)
		id, err := obfuscator.Deobfuscate(e.EncryptedID, security.EmployeeIDRouteValue)
		require.NoError(t, err)
		assert.Equal(t, e.ID, id)

		got, err := svc.GetEmployee(ctx, e.EncryptedID)
		require.NoError(t, err)
		assert.Equal(t, e.Name, got.Name)
		assert.NotEmpty(t, got.EncryptedID)
	}
}

func TestEmployeeService_RejectsBadRouteValues(t *testing.T) {
	ctx := context.Background()
	svc, obfuscator := newEmployeeService(t)

	otherPurpose, err := obfuscator.Obfuscate(1, "SomethingElse")
	require.NoError(t, err)

	valid, err := obfuscator.Obfuscate(1, security.EmployeeIDRouteValue)
	require.NoError(t, err)
	tampered := []byte(valid)
	if tampered[5] == 'A' {
		tampered[5] = 'B'
	} else {
		tampered[5] = 'A'
	}

	for _, token := range []string{"", "1", "not-a-token", otherPurpose, string(tampered)} {
		_, err := svc.GetEmployee(ctx, token)
		assert.ErrorIs(t, err, echo_errors.ErrEmployeeNotFound, token)

		assert.ErrorIs(t, svc.DeleteEmployee(ctx, token), echo_errors.ErrEmployeeNotFound, token)
	}

	missing, err := obfuscator.Obfuscate(999, security.EmployeeIDRouteValue)
	require.NoError(t, err)
	_, err = svc.GetEmployee(ctx, missing)
	assert.ErrorIs(t, err, echo_errors.ErrEmployeeNotFound)
}

func TestEmployeeService_CreateUpdateDelete(t *testing.T) {
	ctx := context.Background()
	svc, _ := newEmployeeService(t)

	_, err := svc.CreateEmployee(ctx, model.EmployeeForm{Name: "Ann", Email: "bad", Department: model.DeptIT}, nil)
	assert.ErrorIs(t, err, echo_errors.ErrInvalidEmployeeData)

	created, err := svc.CreateEmployee(ctx, model.EmployeeForm{Name: "Ann", Email: "ann@pragimtech.com", Department: model.DeptIT}, nil)
	require.NoError(t, err)
	assert.Equal(t, 4, created.ID)
	require.NotEmpty(t, created.EncryptedID)

	updated, err := svc.UpdateEmployee(ctx, created.EncryptedID,
		model.EmployeeForm{Name: "Anna", Email: "anna@pragimtech.com", Department: model.DeptPayroll}, nil)
	require.NoError(t, err)
	assert.Equal(t, "Anna", updated.Name)
	assert.Equal(t, model.DeptPayroll, updated.Department)

	_, err = svc.UpdateEmployee(ctx, created.EncryptedID,
		model.EmployeeForm{Name: "Anna", Email: "anna@pragimtech.com", Department: "Sales"}, nil)
	assert.ErrorIs(t, err, echo_errors.ErrInvalidEmployeeData)

	require.NoError(t, svc.DeleteEmployee(ctx, created.EncryptedID))
	_, err = svc.GetEmployee(ctx, created.EncryptedID)
	assert.ErrorIs(t, err, echo_errors.ErrEmployeeNotFound)
	assert.ErrorIs(t, svc.DeleteEmployee(ctx, created.EncryptedID), echo_errors.ErrEmployeeNotFound)
}
