package enum_test

import (
	"fmt"

	"github.com/astfn/as-enum/pkg/enum"
)

func ExampleNew() {
	status := enum.New(
		enum.T("draft", 0, "Draft"),
		enum.T("published", 1, "Published", enum.Extra{"color": "green"}),
		enum.T("archived"),
	)

	v, _ := status.ValueByKey("published")
	l, _ := status.LabelByValue(0)
	k, _ := status.KeyByValue("archived")
	fmt.Println(v, l, k)
	fmt.Println(status.Keys())
	// Output:
	// 1 Draft archived
	// [draft published archived]
}

func ExampleEnum_GenOptions() {
	e := enum.New(
		enum.T(2),
		enum.T(1, nil, "L2"),
	)

	for _, opt := range e.GenOptions(enum.WithLabelAlias("text")) {
		fmt.Println(opt["text"], opt["value"])
	}
	// Output:
	// 2 2
	// L2 1
}

func ExampleEnum_Get() {
	e := enum.New(
		enum.T("on", true, "Enabled", enum.Extra{"icon": "check"}),
		enum.T(7, "seven"),
	)

	rec, _ := e.Get("on")
	fmt.Println(rec["value"], rec["label"], rec["icon"])
	rec, _ = e.Get("7")
	fmt.Println(rec["value"])
	// Output:
	// true Enabled check
	// seven
}
