package disabled

func swap(a, b *int) { *a, *b = *b, *a }

func f() int {
	x := 1
	swap(&x, &x)

	return x
}
