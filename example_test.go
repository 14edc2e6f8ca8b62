package tfdrawer_test

import (
	"fmt"
	"image"

	tfdrawer "github.com/Kaiserouo/Image-Transfer-Function-Drawer-GUI"
)

func ExampleBuildTable() {
	pts, err := tfdrawer.ParsePoints("[(0, 0), (128, 255), (255, 255)]")
	if err != nil {
		return
	}
	table := tfdrawer.BuildTable(pts)
	fmt.Println(table[0], table[64], table[128], table[255])
	// Output: 0 127 255 255
}

func ExamplePointSet() {
	set := tfdrawer.NewPointSet()
	set.Add(64, 200)
	set.Add(300, 10) // outside the plot area, ignored
	fmt.Println(set)
	// Output: [(0, 0), (64, 200), (255, 255)]
}

func ExampleEngine_AddPoint() {
	img := image.NewGray(image.Rect(0, 0, 2, 2))
	img.Pix[0], img.Pix[1], img.Pix[2], img.Pix[3] = 0, 64, 128, 255

	engine, err := tfdrawer.NewEngine(img)
	if err != nil {
		return
	}
	out := engine.AddPoint(128, 255).(*image.Gray)
	fmt.Println(out.Pix)
	// Output: [0 127 255 255]
}
