package repositories

import (
	"context"
	"testing"

	sq "github.com/Masterminds/squirrel"
	"github.com/dharmayuga/dharmayuga/internal/loader"
	"github.com/dharmayuga/dharmayuga/pkg/errors"
	"github.com/pashagolub/pgxmock/v4"
)

type named struct {
	ID   string `db:"id"`
	Name string `db:"name"`
}

var godsByName = Query{
	Table:   "gods",
	Columns: []string{"id", "name"},
	Where:   sq.Eq{"name": "Shiva"},
}

func TestSelectOneRejectsDuplicateRows(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	defer mock.Close()

	mock.ExpectQuery("SELECT (.+) FROM gods WHERE name = (.+) LIMIT 2").
		WithArgs("Shiva").
		WillReturnRows(pgxmock.NewRows([]string{"id", "name"}).
			AddRow("1", "Shiva").
			AddRow("2", "Shiva"))

	item, err := SelectOne[named](context.Background(), mock, godsByName)
	if err == nil {
		t.Fatalf("expected error, got %+v", item)
	}
	if got := errors.GetCode(err); got != CodeAmbiguous {
		t.Fatalf("code = %q, want %q", got, CodeAmbiguous)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestSelectOneFeedsSingleResource(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	defer mock.Close()

	mock.ExpectQuery("SELECT (.+) FROM gods").
		WithArgs("Shiva").
		WillReturnRows(pgxmock.NewRows([]string{"id", "name"}).
			AddRow("1", "Shiva").
			AddRow("2", "Shiva"))
	mock.ExpectQuery("SELECT (.+) FROM gods").
		WithArgs("Shiva").
		WillReturnRows(pgxmock.NewRows([]string{"id", "name"}).
			AddRow("1", "Shiva"))

	res := loader.NewSingle[named]("god", func(ctx context.Context) (*named, error) {
		return SelectOne[named](ctx, mock, godsByName)
	})

	st := res.Refetch(context.Background())
	if st.Data != nil || st.Err == "" {
		t.Fatalf("ambiguous match state = %+v", st)
	}

	st = res.Refetch(context.Background())
	if st.Err != "" || st.Data == nil || st.Data.ID != "1" {
		t.Fatalf("single match state = %+v", st)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestTimeoutIsServiceUnavailable(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	defer mock.Close()

	mock.ExpectQuery("SELECT (.+) FROM gods").
		WithArgs("Shiva").
		WillReturnError(context.DeadlineExceeded)
	mock.ExpectExec("DELETE FROM reel_likes").
		WithArgs("r1").
		WillReturnError(errors.New("syntax error"))

	_, err = SelectAll[named](context.Background(), mock, godsByName)
	if !errors.IsServiceUnavailable(err) || errors.GetCode(err) != errors.CodeRemote {
		t.Fatalf("timeout err = %v", err)
	}

	_, err = Delete(context.Background(), mock, "reel_likes", sq.Eq{"reel_id": "r1"})
	if err == nil || errors.IsServiceUnavailable(err) {
		t.Fatalf("statement err = %v", err)
	}
}
