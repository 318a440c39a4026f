package util

// PtrStr 返回字符串指针
func PtrStr(s string) *string {
	return &s
}

// PtrInt 返回整数指针
func PtrInt(i int) *int {
	return &i
}

// PtrFloat32 返回浮点数指针
func PtrFloat32(f float32) *float32 {
	return &f
}
