// Package capi 以整数返回码 + 出参的调用约定包装 xfid 核心操作。
//
// 这是 C 可调用边界（cmd/libfid）的纯 Go 实现层：全部契约
// （返回码、缓冲区长度、空指针语义、句柄生命周期）在这里实现并
// 测试，cgo 导出层只做指针到切片的换形。
//
// 返回码是稳定的外部契约：0 表示成功（或非负长度），负数表示
// 具体的失败种类，见 codes.go。
package capi
