package dao_test

import (
	"context"
	"errors"
	"strconv"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	testifymock "github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/dev-mohitbeniwal/employee-management/audit"
	"github.com/dev-mohitbeniwal/employee-management/dao"
	"github.com/dev-mohitbeniwal/employee-management/db"
	echo_errors "github.com/dev-mohitbeniwal/employee-management/errors"
	"github.com/dev-mohitbeniwal/employee-management/model"
	"github.com/dev-mohitbeniwal/employee-management/test/mock"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	gdb, err := db.Open("sqlite", ":memory:")
	require.NoError(t, err)
	require.NoError(t, db.Migrate(gdb))
	t.Cleanup(func() { db.Close(gdb) })
	return gdb
}

func newAuditMock() *mock.MockAuditService {
	m := new(mock.MockAuditService)
	m.On("LogAccess", testifymock.Anything, testifymock.Anything).Return(nil)
	return m
}

func TestEmployeeDAO(t *testing.T) {
	ctx := context.Background()
	auditSvc := newAuditMock()
	employeeDAO := dao.NewEmployeeDAO(newTestDB(t), auditSvc)

	emp := &model.Employee{Name: "Mary", Email: "mary@pragimtech.com", Department: model.DeptHR}
	require.NoError(t, employeeDAO.CreateEmployee(ctx, emp))
	require.NotZero(t, emp.ID)

	t.Run("Get", func(t *testing.T) {
		got, err := employeeDAO.GetEmployee(ctx, emp.ID)
		require.NoError(t, err)
		assert.Equal(t, "Mary", got.Name)
		assert.Equal(t, model.DeptHR, got.Department)
	})

	t.Run("Get_NotFound", func(t *testing.T) {
		_, err := employeeDAO.GetEmployee(ctx, 9999)
		assert.ErrorIs(t, err, echo_errors.ErrEmployeeNotFound)
	})

	t.Run("Update", func(t *testing.T) {
		updated, err := employeeDAO.UpdateEmployee(ctx, &model.Employee{
			ID: emp.ID, Name: "Mary Jane", Email: "mj@pragimtech.com", Department: model.DeptPayroll,
		})
		require.NoError(t, err)
		assert.Equal(t, "Mary Jane", updated.Name)
		assert.Equal(t, model.DeptPayroll, updated.Department)
	})

	t.Run("Update_NotFound", func(t *testing.T) {
		_, err := employeeDAO.UpdateEmployee(ctx, &model.Employee{ID: 9999, Name: "x"})
		assert.ErrorIs(t, err, echo_errors.ErrEmployeeNotFound)
	})

	t.Run("List", func(t *testing.T) {
		require.NoError(t, employeeDAO.CreateEmployee(ctx, &model.Employee{Name: "John", Email: "john@pragimtech.com", Department: model.DeptIT}))
		list, err := employeeDAO.ListEmployees(ctx)
		require.NoError(t, err)
		require.Len(t, list, 2)
		assert.Equal(t, emp.ID, list[0].ID)
	})

	t.Run("Delete", func(t *testing.T) {
		deleted, err := employeeDAO.DeleteEmployee(ctx, emp.ID)
		require.NoError(t, err)
		assert.Equal(t, emp.ID, deleted.ID)

		_, err = employeeDAO.GetEmployee(ctx, emp.ID)
		assert.ErrorIs(t, err, echo_errors.ErrEmployeeNotFound)

		_, err = employeeDAO.DeleteEmployee(ctx, emp.ID)
		assert.ErrorIs(t, err, echo_errors.ErrEmployeeNotFound)
	})

	auditSvc.AssertCalled(t, "LogAccess", testifymock.Anything, testifymock.MatchedBy(func(l audit.AuditLog) bool {
		return l.Action == "DELETE_EMPLOYEE" && l.ResourceID == strconv.Itoa(emp.ID)
	}))
}

func TestEmployeeDAO_DatabaseFailure(t *testing.T) {
	sqlDB, sqlMock, err := sqlmock.New()
	require.NoError(t, err)
	defer sqlDB.Close()

	gdb, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	employeeDAO := dao.NewEmployeeDAO(gdb, nil)

	sqlMock.ExpectQuery(`SELECT \* FROM "employees"`).WillReturnError(errors.New("connection reset"))
	_, err = employeeDAO.GetEmployee(context.Background(), 1)
	assert.ErrorIs(t, err, echo_errors.ErrDatabaseOperation)
	assert.NotErrorIs(t, err, echo_errors.ErrEmployeeNotFound)

	sqlMock.ExpectQuery(`SELECT \* FROM "employees" ORDER BY id`).WillReturnError(errors.New("connection reset"))
	_, err = employeeDAO.ListEmployees(context.Background())
	assert.ErrorIs(t, err, echo_errors.ErrDatabaseOperation)

	assert.NoError(t, sqlMock.ExpectationsWereMet())
}

func TestMemoryEmployeeDAO(t *testing.T) {
	ctx := context.Background()
	memDAO := dao.NewMemoryEmployeeDAO()

	list, err := memDAO.ListEmployees(ctx)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "Mary", list[0].Name)
	assert.Equal(t, "John", list[1].Name)
	assert.Equal(t, "Sam", list[2].Name)

	emp := &model.Employee{Name: "Ann", Email: "ann@pragimtech.com", Department: model.DeptPayroll}
	require.NoError(t, memDAO.CreateEmployee(ctx, emp))
	assert.Equal(t, 4, emp.ID)

	updated, err := memDAO.UpdateEmployee(ctx, &model.Employee{ID: 4, Name: "Anna", Email: "ann@pragimtech.com", Department: model.DeptIT})
	require.NoError(t, err)
	assert.Equal(t, "Anna", updated.Name)

	_, err = memDAO.UpdateEmployee(ctx, &model.Employee{ID: 42})
	assert.ErrorIs(t, err, echo_errors.ErrEmployeeNotFound)

	deleted, err := memDAO.DeleteEmployee(ctx, 4)
	require.NoError(t, err)
	assert.Equal(t, "Anna", deleted.Name)

	_, err = memDAO.GetEmployee(ctx, 4)
	assert.ErrorIs(t, err, echo_errors.ErrEmployeeNotFound)
}

func TestUserDAO(t *testing.T) {
	ctx := context.Background()
	gdb := newTestDB(t)
	userDAO := dao.NewUserDAO(gdb, newAuditMock())
	roleDAO := dao.NewRoleDAO(gdb, newAuditMock())

	user := &model.User{UserName: "abc@example.com", Email: "abc@example.com", City: "London"}
	require.NoError(t, userDAO.CreateUser(ctx, user))
	assert.NotEmpty(t, user.ID)
	assert.NotEmpty(t, user.SecurityStamp)

	t.Run("CreateUser_Conflict", func(t *testing.T) {
		err := userDAO.CreateUser(ctx, &model.User{UserName: "abc@example.com", Email: "abc@example.com"})
		assert.ErrorIs(t, err, echo_errors.ErrUserConflict)
	})

	t.Run("FindByEmail_IgnoresCase", func(t *testing.T) {
		got, err := userDAO.FindByEmail(ctx, "ABC@Example.com")
		require.NoError(t, err)
		assert.Equal(t, user.ID, got.ID)

		_, err = userDAO.FindByEmail(ctx, "nobody@example.com")
		assert.ErrorIs(t, err, echo_errors.ErrUserNotFound)
		assert.True(t, dao.IsNotFound(err))
	})

	t.Run("FindByUserName", func(t *testing.T) {
		got, err := userDAO.FindByUserName(ctx, "ABC@EXAMPLE.COM")
		require.NoError(t, err)
		assert.Equal(t, user.ID, got.ID)
	})

	t.Run("Logins", func(t *testing.T) {
		require.NoError(t, userDAO.AddLogin(ctx, model.UserLogin{LoginProvider: "Google", ProviderKey: "g-1", UserID: user.ID}))
		got, err := userDAO.FindByLogin(ctx, "Google", "g-1")
		require.NoError(t, err)
		assert.Equal(t, user.ID, got.ID)

		_, err = userDAO.FindByLogin(ctx, "Google", "g-2")
		assert.ErrorIs(t, err, echo_errors.ErrUserNotFound)
	})

	t.Run("UpdateUser", func(t *testing.T) {
		changed := *user
		changed.City = "Paris"
		changed.EmailConfirmed = true
		updated, err := userDAO.UpdateUser(ctx, &changed)
		require.NoError(t, err)
		assert.Equal(t, "Paris", updated.City)
		assert.True(t, updated.EmailConfirmed)

		_, err = userDAO.UpdateUser(ctx, &model.User{ID: "missing", UserName: "x"})
		assert.ErrorIs(t, err, echo_errors.ErrUserNotFound)
	})

	stampOf := func(t *testing.T) string {
		t.Helper()
		got, err := userDAO.GetUser(ctx, user.ID)
		require.NoError(t, err)
		return got.SecurityStamp
	}

	t.Run("Claims", func(t *testing.T) {
		before := stampOf(t)
		require.NoError(t, userDAO.ReplaceClaims(ctx, user.ID, []model.UserClaim{
			{ClaimType: "Create Role", ClaimValue: "true"},
			{ClaimType: "Edit Role", ClaimValue: "false"},
		}))
		require.NoError(t, userDAO.ReplaceClaims(ctx, user.ID, []model.UserClaim{
			{ClaimType: "Delete Role", ClaimValue: "true"},
		}))
		claims, err := userDAO.GetClaims(ctx, user.ID)
		require.NoError(t, err)
		require.Len(t, claims, 1)
		assert.Equal(t, "Delete Role", claims[0].ClaimType)
		assert.NotEqual(t, before, stampOf(t))
	})

	t.Run("Roles", func(t *testing.T) {
		admin := &model.Role{Name: "Admin"}
		hr := &model.Role{Name: "HR"}
		require.NoError(t, roleDAO.CreateRole(ctx, admin))
		require.NoError(t, roleDAO.CreateRole(ctx, hr))

		stamp := stampOf(t)
		require.NoError(t, userDAO.AddToRole(ctx, user.ID, *admin))
		in, err := userDAO.IsInRole(ctx, user.ID, admin.ID)
		require.NoError(t, err)
		assert.True(t, in)
		assert.NotEqual(t, stamp, stampOf(t))

		stamp = stampOf(t)
		require.NoError(t, userDAO.ReplaceRoles(ctx, user.ID, []model.Role{*hr}))
		assert.NotEqual(t, stamp, stampOf(t))
		roles, err := userDAO.GetRoles(ctx, user.ID)
		require.NoError(t, err)
		require.Len(t, roles, 1)
		assert.Equal(t, "HR", roles[0].Name)

		members, err := userDAO.UsersInRole(ctx, hr.ID)
		require.NoError(t, err)
		require.Len(t, members, 1)
		assert.Equal(t, user.ID, members[0].ID)

		stamp = stampOf(t)
		require.NoError(t, userDAO.RemoveFromRole(ctx, user.ID, *hr))
		in, err = userDAO.IsInRole(ctx, user.ID, hr.ID)
		require.NoError(t, err)
		assert.False(t, in)
		assert.NotEqual(t, stamp, stampOf(t))
	})

	t.Run("ListUsers", func(t *testing.T) {
		require.NoError(t, userDAO.CreateUser(ctx, &model.User{UserName: "zed@example.com", Email: "zed@example.com"}))
		users, err := userDAO.ListUsers(ctx, 0, 0)
		require.NoError(t, err)
		require.Len(t, users, 2)
		assert.Equal(t, "abc@example.com", users[0].UserName)

		page, err := userDAO.ListUsers(ctx, 1, 1)
		require.NoError(t, err)
		require.Len(t, page, 1)
		assert.Equal(t, "zed@example.com", page[0].UserName)
	})

	t.Run("DeleteUser", func(t *testing.T) {
		require.NoError(t, userDAO.DeleteUser(ctx, user.ID))
		_, err := userDAO.GetUser(ctx, user.ID)
		assert.ErrorIs(t, err, echo_errors.ErrUserNotFound)

		claims, err := userDAO.GetClaims(ctx, user.ID)
		require.NoError(t, err)
		assert.Empty(t, claims)

		assert.ErrorIs(t, userDAO.DeleteUser(ctx, user.ID), echo_errors.ErrUserNotFound)
	})
}

func TestRoleDAO(t *testing.T) {
	ctx := context.Background()
	gdb := newTestDB(t)
	roleDAO := dao.NewRoleDAO(gdb, newAuditMock())
	userDAO := dao.NewUserDAO(gdb, newAuditMock())

	role := &model.Role{Name: "Manager"}
	require.NoError(t, roleDAO.CreateRole(ctx, role))
	assert.NotEmpty(t, role.ID)

	t.Run("Create_Conflict", func(t *testing.T) {
		assert.ErrorIs(t, roleDAO.CreateRole(ctx, &model.Role{Name: "Manager"}), echo_errors.ErrRoleConflict)
	})

	t.Run("FindByName", func(t *testing.T) {
		got, err := roleDAO.FindByName(ctx, "manager")
		require.NoError(t, err)
		assert.Equal(t, role.ID, got.ID)
	})

	t.Run("Update", func(t *testing.T) {
		updated, err := roleDAO.UpdateRole(ctx, &model.Role{ID: role.ID, Name: "Managers"})
		require.NoError(t, err)
		assert.Equal(t, "Managers", updated.Name)

		_, err = roleDAO.UpdateRole(ctx, &model.Role{ID: "missing", Name: "x"})
		assert.ErrorIs(t, err, echo_errors.ErrRoleNotFound)
	})

	t.Run("Delete_InUse", func(t *testing.T) {
		user := &model.User{UserName: "m@example.com", Email: "m@example.com"}
		require.NoError(t, userDAO.CreateUser(ctx, user))
		require.NoError(t, userDAO.AddToRole(ctx, user.ID, *role))

		assert.ErrorIs(t, roleDAO.DeleteRole(ctx, role.ID), echo_errors.ErrRoleInUse)

		require.NoError(t, userDAO.RemoveFromRole(ctx, user.ID, *role))
		require.NoError(t, roleDAO.DeleteRole(ctx, role.ID))

		_, err := roleDAO.GetRole(ctx, role.ID)
		assert.ErrorIs(t, err, echo_errors.ErrRoleNotFound)
	})

	t.Run("List", func(t *testing.T) {
		require.NoError(t, roleDAO.CreateRole(ctx, &model.Role{Name: "B"}))
		require.NoError(t, roleDAO.CreateRole(ctx, &model.Role{Name: "A"}))
		roles, err := roleDAO.ListRoles(ctx)
		require.NoError(t, err)
		require.Len(t, roles, 2)
		assert.Equal(t, "A", roles[0].Name)
	})
}
