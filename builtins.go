package miischeme

import (
	"math"
	"sort"

	"github.com/xiam/miischeme/errs"
)

// universe holds the built-in bindings. It sits behind every environment:
// a symbol that no environment binds is looked up here last, so user
// definitions shadow builtins.
var universe = map[string]*Value{}

// Defn registers a built-in operator.
func Defn(name string, fn Builtin) {
	universe[name] = NewBuiltin(name, fn)
}

func def(name string, value *Value) {
	universe[name] = value
}

// Builtins returns the names of the built-in bindings, sorted.
func Builtins() []string {
	names := make([]string, 0, len(universe))
	for name := range universe {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func init() {
	def("nil", Nil)
	def("true", True)
	def("false", False)

	Defn("+", fold("+", 0, addInt))
	Defn("*", fold("*", 1, mulInt))
	Defn("-", subtract)
	Defn("/", divide)
	Defn("mod", modulo)

	Defn("=", equal("="))
	Defn("bingana", equal("bingana"))

	Defn("<", compare("<", func(a, b int64) bool { return a < b }))
	Defn(">", compare(">", func(a, b int64) bool { return a > b }))
	Defn("<=", compare("<=", func(a, b int64) bool { return a <= b }))
	Defn(">=", compare(">=", func(a, b int64) bool { return a >= b }))

	Defn("not", not)
}

type intOp func(a, b int64) (int64, bool)

func numbers(name string, args []*Value) ([]int64, error) {
	nums := make([]int64, len(args))
	for i, arg := range args {
		if arg.Type != ValueTypeInt {
			return nil, errs.Runtime(errs.MsgNotANumber, name, arg.String())
		}
		nums[i] = arg.Int()
	}
	return nums, nil
}

func minArgs(name string, args []*Value, n int) error {
	if len(args) < n {
		return errs.Runtime(errs.MsgMinArity, name, n, len(args))
	}
	return nil
}

func reduce(name string, acc int64, nums []int64, op intOp) (*Value, error) {
	for _, n := range nums {
		var ok bool
		if acc, ok = op(acc, n); !ok {
			return nil, errs.Runtime(errs.MsgOverflow, name)
		}
	}
	return NewInt(acc), nil
}

func fold(name string, identity int64, op intOp) Builtin {
	return func(args []*Value) (*Value, error) {
		nums, err := numbers(name, args)
		if err != nil {
			return nil, err
		}
		return reduce(name, identity, nums, op)
	}
}

func subtract(args []*Value) (*Value, error) {
	if err := minArgs("-", args, 1); err != nil {
		return nil, err
	}
	nums, err := numbers("-", args)
	if err != nil {
		return nil, err
	}
	if len(nums) == 1 {
		return reduce("-", 0, nums, subInt)
	}
	return reduce("-", nums[0], nums[1:], subInt)
}

func divide(args []*Value) (*Value, error) {
	if err := minArgs("/", args, 2); err != nil {
		return nil, err
	}
	nums, err := numbers("/", args)
	if err != nil {
		return nil, err
	}
	acc := nums[0]
	for _, n := range nums[1:] {
		if n == 0 {
			return nil, errs.Runtime(errs.MsgDivisionByZero)
		}
		if acc == math.MinInt64 && n == -1 {
			return nil, errs.Runtime(errs.MsgOverflow, "/")
		}
		acc /= n
	}
	return NewInt(acc), nil
}

func modulo(args []*Value) (*Value, error) {
	if len(args) != 2 {
		return nil, errs.Runtime(errs.MsgArity, "mod", 2, len(args))
	}
	nums, err := numbers("mod", args)
	if err != nil {
		return nil, err
	}
	if nums[1] == 0 {
		return nil, errs.Runtime(errs.MsgDivisionByZero)
	}
	return NewInt(nums[0] % nums[1]), nil
}

func equal(name string) Builtin {
	return func(args []*Value) (*Value, error) {
		if err := minArgs(name, args, 1); err != nil {
			return nil, err
		}
		for i := 1; i < len(args); i++ {
			if !args[i-1].Equal(args[i]) {
				return False, nil
			}
		}
		return True, nil
	}
}

func compare(name string, cmp func(a, b int64) bool) Builtin {
	return func(args []*Value) (*Value, error) {
		if err := minArgs(name, args, 1); err != nil {
			return nil, err
		}
		nums, err := numbers(name, args)
		if err != nil {
			return nil, err
		}
		for i := 1; i < len(nums); i++ {
			if !cmp(nums[i-1], nums[i]) {
				return False, nil
			}
		}
		return True, nil
	}
}

func not(args []*Value) (*Value, error) {
	if len(args) != 1 {
		return nil, errs.Runtime(errs.MsgArity, "not", 1, len(args))
	}
	return NewBool(!args[0].Truthy()), nil
}

func addInt(a, b int64) (int64, bool) {
	if (b > 0 && a > math.MaxInt64-b) || (b < 0 && a < math.MinInt64-b) {
		return 0, false
	}
	return a + b, true
}

func subInt(a, b int64) (int64, bool) {
	if (b < 0 && a > math.MaxInt64+b) || (b > 0 && a < math.MinInt64+b) {
		return 0, false
	}
	return a - b, true
}

func mulInt(a, b int64) (int64, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	c := a * b
	if (a == -1 && b == math.MinInt64) || (b == -1 && a == math.MinInt64) || c/b != a {
		return 0, false
	}
	return c, true
}
